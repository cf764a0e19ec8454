// Package domain rasterizes two-dimensional regions into occupancy grids.
//
// What:
//
//   - Grid (Omega) is an immutable M×N boolean raster over a bounding
//     rectangle. M points are sampled along x (axis 0), N along y (axis 1).
//     Cells are stored column-major: flat index k = i + M*j.
//   - Triangle and Ellipse are the analytic shapes; FromMask and FromBinary
//     accept caller-supplied rasters.
//   - Rasterize samples a Shape at a resolution num, where num is the number
//     of points along the wider side of the bounding rectangle.
//
// Invariants of every Grid handed out by this package:
//
//   - the first and last row and column are false (the region never touches
//     the bounding rectangle, so a Dirichlet condition is representable);
//   - at least one cell is true.
//
// Resolution policy:
//
//	wider axis:    num points
//	narrower axis: round(num * short/long) points, at least 2
//	square box:    num × num
//
// Complexity:
//
//   - Rasterize: O(M×N), Memory: O(M×N).
//   - Components: O(M×N×4), Memory: O(M×N).
//
// Errors:
//
//   - ErrInvalidArgument: bad resolution, negative or non-finite sizes/vertices.
//   - ErrDegenerateShape: fewer than three distinct or collinear vertices, or
//     a shape with no interior cell at the requested resolution.
//   - ErrInvalidDomain: a grid violating the invariants above.
package domain
