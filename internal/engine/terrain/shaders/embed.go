// Package shaders embeds the terrain GLSL sources.
package shaders

import _ "embed"

//go:embed terrain.vert
var TerrainVertexShader string

//go:embed terrain.frag
var TerrainFragmentShader string
