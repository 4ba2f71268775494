// Package shader holds WGSL shader sources and the metadata the renderer
// needs to build its pipeline from them.
package shader

import (
	"fmt"
	"os"
)

// ShaderType identifies the pipeline stage a shader targets.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

// defaultEntryPoint returns the conventional WGSL entry point name for a stage.
func defaultEntryPoint(t ShaderType) string {
	if t == ShaderTypeFragment {
		return "fs_main"
	}
	return "vs_main"
}

// shader is the implementation of the Shader interface.
type shader struct {
	key        string
	source     string
	shaderType ShaderType
	entryPoint string
}

// Shader defines the interface for a WGSL shader stage: its unique key,
// source code, stage type, and entry point name.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for labels and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// Type retrieves the pipeline stage this shader targets.
	//
	// Returns:
	//   - ShaderType: the shader stage type
	Type() ShaderType

	// EntryPoint retrieves the entry point function name for this shader stage.
	//
	// Returns:
	//   - string: the entry point name
	EntryPoint() string
}

var _ Shader = &shader{}

// NewShader creates a Shader from an in-memory WGSL source string. The
// entry point defaults to the stage convention (vs_main / fs_main).
//
// Parameters:
//   - key: the unique identifier for this shader
//   - shaderType: the pipeline stage this shader targets
//   - source: the WGSL source code
//
// Returns:
//   - Shader: the configured shader
func NewShader(key string, shaderType ShaderType, source string) Shader {
	return &shader{
		key:        key,
		source:     source,
		shaderType: shaderType,
		entryPoint: defaultEntryPoint(shaderType),
	}
}

// NewShaderFromFile creates a Shader by reading WGSL source from a file.
//
// Parameters:
//   - key: the unique identifier for this shader
//   - shaderType: the pipeline stage this shader targets
//   - path: the filesystem path of the WGSL source
//
// Returns:
//   - Shader: the configured shader
//   - error: an error if the file could not be read
func NewShaderFromFile(key string, shaderType ShaderType, path string) (Shader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader source %q: %w", path, err)
	}
	return NewShader(key, shaderType, string(src)), nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) Type() ShaderType {
	return s.shaderType
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}
