package display

import (
	"fmt"
	"iter"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"noisefield/pkg/config"
	"noisefield/pkg/procedural"
)

// Renderer owns the GL objects for the textured quad and the point batch
type Renderer struct {
	texWidth  int
	texHeight int

	quadProgram  uint32
	pointProgram uint32
	quadVAO      uint32
	quadVBO      uint32
	pointVAO     uint32
	pointVBO     uint32
	texture      uint32

	// Shader uniforms
	textureLocation    int32
	resolutionLocation int32
	colorLocation      int32

	// reused between frames
	pointVertices []float32
}

// NewRenderer creates GL resources on the current context
func NewRenderer(cfg config.GraphicsConfig) (*Renderer, error) {
	r := &Renderer{
		texWidth:  cfg.Width,
		texHeight: cfg.Height,
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	// RGB rows are not 4-byte aligned for every width
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	var err error
	if r.quadProgram, err = createShaderProgram(quadVertexShaderSource, quadFragmentShaderSource); err != nil {
		return nil, err
	}
	if r.pointProgram, err = createShaderProgram(pointVertexShaderSource, pointFragmentShaderSource); err != nil {
		gl.DeleteProgram(r.quadProgram)
		return nil, err
	}

	// Get uniform locations
	r.textureLocation = gl.GetUniformLocation(r.quadProgram, gl.Str("noiseTexture\x00"))
	r.resolutionLocation = gl.GetUniformLocation(r.pointProgram, gl.Str("resolution\x00"))
	r.colorLocation = gl.GetUniformLocation(r.pointProgram, gl.Str("pointColor\x00"))

	gl.UseProgram(r.pointProgram)
	gl.Uniform3f(r.colorLocation, 1.0, 1.0, 1.0)

	r.setupQuad()
	r.setupPoints()
	r.setupTexture(cfg.TextureFilter)

	return r, nil
}

// setupQuad creates the full-screen quad. Texture row 0 lands at the bottom.
func (r *Renderer) setupQuad() {
	vertices := []float32{
		// Positions      // Texture coords
		-1.0, -1.0, 0.0, 0.0, 0.0,
		1.0, -1.0, 0.0, 1.0, 0.0,
		1.0, 1.0, 0.0, 1.0, 1.0,
		-1.0, 1.0, 0.0, 0.0, 1.0,
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	// Texture coord attribute
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// setupPoints creates the streaming vertex buffer for scatter points
func (r *Renderer) setupPoints() {
	gl.GenVertexArrays(1, &r.pointVAO)
	gl.GenBuffers(1, &r.pointVBO)
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
}

func (r *Renderer) setupTexture(filter string) {
	glFilter := int32(gl.LINEAR)
	if filter == "nearest" {
		glFilter = gl.NEAREST
	}

	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	r.allocateTexture()
}

func (r *Renderer) allocateTexture() {
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(r.texWidth), int32(r.texHeight), 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
}

// Clear resets the viewport to the framebuffer size and clears it
func (r *Renderer) Clear(viewWidth, viewHeight int) {
	gl.Viewport(0, 0, int32(viewWidth), int32(viewHeight))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// SetProjection maps point coordinates onto a width×height pixel grid
func (r *Renderer) SetProjection(width, height int) {
	gl.UseProgram(r.pointProgram)
	gl.Uniform2f(r.resolutionLocation, float32(width), float32(height))
}

// Upload copies the pixel buffer into the texture
func (r *Renderer) Upload(buf *procedural.PixelBuffer) {
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	if buf.Width != r.texWidth || buf.Height != r.texHeight {
		r.texWidth, r.texHeight = buf.Width, buf.Height
		r.allocateTexture()
	}
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(buf.Width), int32(buf.Height), gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(buf.Pix))
}

// DrawQuad draws the texture over the viewport
func (r *Renderer) DrawQuad() {
	gl.UseProgram(r.quadProgram)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.Uniform1i(r.textureLocation, 0)

	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(0)
}

// DrawPoints batches the points into one draw call at pixel centers
func (r *Renderer) DrawPoints(points iter.Seq[procedural.Point]) {
	r.pointVertices = r.pointVertices[:0]
	for p := range points {
		r.pointVertices = append(r.pointVertices, float32(p.X)+0.5, float32(p.Y)+0.5)
	}
	if len(r.pointVertices) == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.pointVertices)*4, gl.Ptr(r.pointVertices), gl.STREAM_DRAW)

	gl.UseProgram(r.pointProgram)
	gl.BindVertexArray(r.pointVAO)
	gl.DrawArrays(gl.POINTS, 0, int32(len(r.pointVertices)/2))
	gl.BindVertexArray(0)
}

// Close releases all OpenGL resources
func (r *Renderer) Close() {
	gl.DeleteVertexArrays(1, &r.quadVAO)
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.pointVAO)
	gl.DeleteBuffers(1, &r.pointVBO)
	gl.DeleteTextures(1, &r.texture)
	gl.DeleteProgram(r.quadProgram)
	gl.DeleteProgram(r.pointProgram)
}

// createShaderProgram compiles and links a shader program from source
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Check for linking errors
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)

		return 0, fmt.Errorf("shader program linking failed: %v", log)
	}

	// Shaders are no longer needed once linked
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// compileShader compiles a shader from source
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)

		return 0, fmt.Errorf("shader compilation failed: %v", log)
	}

	return shader, nil
}
