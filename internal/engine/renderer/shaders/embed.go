// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PrismVertexShader transforms the prism by model, view and projection.
//
//go:embed prism.vert
var PrismVertexShader string

// PrismFragmentShader outputs the interpolated vertex color, unlit.
//
//go:embed prism.frag
var PrismFragmentShader string
