package display

// Shader sources for the presentation surface

// Vertex shader for the full-screen textured quad
const quadVertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

void main() {
    gl_Position = vec4(aPos, 1.0);
    TexCoord = aTexCoord;
}
`

// Fragment shader sampling the noise texture
const quadFragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D noiseTexture;

void main() {
    FragColor = vec4(texture(noiseTexture, TexCoord).rgb, 1.0);
}
`

// Vertex shader for scatter points given in window pixels, origin top-left
const pointVertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPixel;

uniform vec2 resolution;

void main() {
    vec2 ndc = aPixel / resolution * 2.0 - 1.0;
    gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
}
`

// Fragment shader for scatter points
const pointFragmentShaderSource = `
#version 410 core
out vec4 FragColor;

uniform vec3 pointColor;

void main() {
    FragColor = vec4(pointColor, 1.0);
}
`
