// Package cloud computes statistics over point clouds of 3D samples, such as
// the accelerometer and magnetometer readings gathered during calibration.
//
// [Covariance] is the core estimator: it returns the arithmetic mean and the
// Bessel-corrected (N-1) sample covariance of at least two samples, and
// always returns zero values when it fails.
//
// Beyond the one-shot functions the package offers:
//
//   - [Calculate]: mean, covariance and bounds in one [Result], with a
//     sentinel error for too few samples.
//   - [Accumulator]: streaming accumulation across blocks of samples in
//     float64.
//   - [Columns]: a structure-of-arrays batch layout whose reductions run
//     through the vecmath block kernels.
//
// # Accumulation modes
//
// The default [AccumulationSymmetric] builds the textbook symmetric matrix
// cov[i][j] = Σ(c_i·c_j)/(N-1) over centered samples c. [AccumulationLegacy]
// reproduces an older accumulation whose [2][1] entry sums z·z instead of
// y·z. Use it only to match previously recorded calibration output.
package cloud
