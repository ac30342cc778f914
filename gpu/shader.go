// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// CompileShader compiles the given GLSL source as a shader of the given
// type (gl.VERTEX_SHADER or gl.FRAGMENT_SHADER). The source does not need
// to be null terminated. On failure, the returned error includes the
// compiler's info log, but the shader handle is still returned so that
// the caller can carry on and see what renders.
func CompileShader(typ uint32, src string) (uint32, error) {
	handle := gl.CreateShader(typ)

	csources, free := gl.Strs(CString(src))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		lg := make([]byte, logLength+1)
		gl.GetShaderInfoLog(handle, logLength, nil, &lg[0])
		return handle, fmt.Errorf("gpu.CompileShader: failed to compile %s shader:\n%s", shaderTypeName(typ), InfoLog(lg))
	}
	return handle, nil
}

// CompileProgram compiles the vertex and fragment shader sources and
// links them into a program. Compile and link errors are all returned,
// joined, along with the program handle, which may then be invalid.
// The shaders are deleted once linked.
func CompileProgram(vertex, fragment string) (uint32, error) {
	var errs []error
	vs, err := CompileShader(gl.VERTEX_SHADER, vertex)
	if err != nil {
		errs = append(errs, err)
	}
	fs, err := CompileShader(gl.FRAGMENT_SHADER, fragment)
	if err != nil {
		errs = append(errs, err)
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		lg := make([]byte, logLength+1)
		gl.GetProgramInfoLog(handle, logLength, nil, &lg[0])
		errs = append(errs, fmt.Errorf("gpu.CompileProgram: failed to link program:\n%s", InfoLog(lg)))
	}

	// linked into the program now, so no longer needed
	gl.DetachShader(handle, vs)
	gl.DetachShader(handle, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	return handle, errors.Join(errs...)
}

// UniformLocation returns the location of the named uniform in the
// given program, or -1 (with a logged error) if it is not active.
func UniformLocation(program uint32, name string) int32 {
	loc := gl.GetUniformLocation(program, gl.Str(CString(name)))
	if loc < 0 {
		errors.Log(fmt.Errorf("gpu.UniformLocation: uniform %q not found in program %d", name, program))
	}
	return loc
}

// CString returns s with a null terminator appended, as needed by
// gl.Str and gl.Strs. If s is already null terminated it is returned as is.
func CString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// InfoLog returns the text of a GL info log buffer, without
// the null terminator and any trailing whitespace.
func InfoLog(lg []byte) string {
	return strings.TrimRight(string(lg), "\x00 \t\r\n")
}

func shaderTypeName(typ uint32) string {
	switch typ {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%X", typ)
}
