// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"os"
	"runtime"
	"strings"
	"testing"

	"cogentcore.org/cube/anim"
	"cogentcore.org/cube/math32"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, image.Pt(800, 800), cfg.Size)
	assert.Equal(t, 3, cfg.GLMajor)
	assert.GreaterOrEqual(t, cfg.GLMinor, 3)
	assert.Equal(t, 0, cfg.SwapInterval)
	assert.Equal(t, math32.Vec4(0.1, 0.12, 0.2, 1), cfg.ClearColor)
	assert.NotSame(t, cfg, DefaultConfig())
}

func TestShaderSources(t *testing.T) {
	for _, src := range []string{VertexShader, FragmentShader} {
		assert.True(t, strings.HasPrefix(src, "#version 330\n"))
	}
	assert.Contains(t, VertexShader, "uniform mat4 "+TransformUniform+";")
	assert.Contains(t, VertexShader, "layout(location = 0) in vec3 pos;")
	assert.Contains(t, VertexShader, "layout(location = 1) in vec3 vertex_color;")
	assert.Contains(t, FragmentShader, "frag_color = vec4(color, 1.0);")
}

func TestCString(t *testing.T) {
	assert.Equal(t, "transform\x00", CString("transform"))
	assert.Equal(t, "transform\x00", CString("transform\x00"))
	assert.Equal(t, "\x00", CString(""))
}

func TestInfoLog(t *testing.T) {
	lg := []byte("0:3(1): error: syntax error\n\x00\x00")
	assert.Equal(t, "0:3(1): error: syntax error", InfoLog(lg))
	assert.Equal(t, "", InfoLog(make([]byte, 1)))
}

func TestShaderTypeName(t *testing.T) {
	assert.Equal(t, "vertex", shaderTypeName(gl.VERTEX_SHADER))
	assert.Equal(t, "fragment", shaderTypeName(gl.FRAGMENT_SHADER))
	assert.Equal(t, "0x1", shaderTypeName(1))
}

func TestBufferDeleteUnallocated(t *testing.T) {
	// no GL calls are made for buffers that were never activated
	var b *Buffer
	b.Delete()
	b = &Buffer{}
	b.Delete()
	assert.Equal(t, uint32(0), b.Handle())
	assert.Equal(t, 0, b.Len())
}

// needGL skips the test unless CUBE_TEST_GL is set, as it needs a display
// and an OpenGL 3.3 context. glfw calls must all come from one thread.
func needGL(t *testing.T) {
	t.Helper()
	if os.Getenv("CUBE_TEST_GL") == "" {
		t.Skip("Need display and GL 3.3 context; set CUBE_TEST_GL=1")
	}
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
}

func TestContextTwice(t *testing.T) {
	needGL(t)
	require.NoError(t, Init())
	defer Terminate()
	cfg := DefaultConfig()
	win, err := NewWindow(cfg)
	require.NoError(t, err)
	defer win.Destroy()

	a := NewContext(win)
	b := NewContext(win)
	assert.NotEqual(t, a.VAO, b.VAO)
	assert.NotEqual(t, a.Program, b.Program)
	assert.NotEqual(t, a.Positions.Handle(), b.Positions.Handle())
	assert.GreaterOrEqual(t, a.Transform, int32(0))
	assert.GreaterOrEqual(t, b.Transform, int32(0))

	clock := anim.NewClock(Time)
	NewRenderer(a, clock, cfg).Render()
	NewRenderer(b, clock, cfg).Render()
	assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())

	a.Release()
	b.Release()
	b.Release()
	assert.Equal(t, uint32(0), b.VAO)
	assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())
}

func TestShaderErrorContinues(t *testing.T) {
	needGL(t)
	require.NoError(t, Init())
	defer Terminate()
	win, err := NewWindow(DefaultConfig())
	require.NoError(t, err)
	defer win.Destroy()

	prog, err := CompileProgram("#version 330\nvoid main() { nope }", FragmentShader)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile vertex shader")
	assert.NotZero(t, prog)
	assert.Equal(t, int32(-1), UniformLocation(prog, TransformUniform))
}
