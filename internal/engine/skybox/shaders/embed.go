// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SkyVertexShader is the vertex shader for the sky dome.
//
//go:embed sky.vert
var SkyVertexShader string

// SkyFragmentShader evaluates the analytic sky model per pixel.
//
//go:embed sky.frag
var SkyFragmentShader string
