// Package shaders provides embedded GLSL shader sources for the sculpt
// pipeline passes.
package shaders

import _ "embed"

// QuadVertexShader is the UV-passthrough vertex shader shared by all
// full-screen-quad passes.
//
//go:embed quad.vert
var QuadVertexShader string

// SculptFragmentShader accumulates brush edits over the previous state.
//
//go:embed sculpt.frag
var SculptFragmentShader string

// CombineFragmentShader merges the base layer with the accumulated
// sculpt layer.
//
//go:embed combine.frag
var CombineFragmentShader string
