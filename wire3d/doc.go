// Package wire3d is a minimal software 3D wireframe pipeline for small framebuffers.
//
// Meshes are authored in object space, rotated by yaw/pitch/roll, translated,
// viewed through a left-handed look-at camera and projected with a left-handed
// perspective matrix. Projected vertices are cached per mesh and every triangle
// edge is rasterized with integer Bresenham lines into a caller-provided Target.
//
// Pipeline (fixed, once per frame):
//
//	FrameContext.Prepare → FrameContext.ProjectMesh → DrawMeshWireframe.
//
// All numeric primitives are cheap approximations (parabolic sine, bit-trick
// square root) so the pipeline runs on hardware without an FPU. Matrices are
// row-major and vectors are multiplied as rows: v' = v · M.
//
// Nothing here clips, culls or reports errors on the hot path. A zero-length
// vector passed to Normalize or a vertex with homogeneous w == 0 yields
// non-finite coordinates; targets are expected to ignore out-of-range pixels.
package wire3d
