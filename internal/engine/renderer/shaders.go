package renderer

// sceneVertexShader transforms strips into eye space for per-fragment lighting.
const sceneVertexShader = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uProjection;
uniform mat4 uModelView;
uniform mat3 uNormalMatrix;

out vec3 vEyePos;
out vec3 vNormal;
out vec2 vTexCoord;

void main() {
    vec4 eye = uModelView * vec4(aPosition, 1.0);
    vEyePos = eye.xyz;
    vNormal = uNormalMatrix * aNormal;
    vTexCoord = aTexCoord;
    gl_Position = uProjection * eye;
}
`

// sceneFragmentShader evaluates one positional light with the fixed-function
// lighting equation: global ambient, light ambient, diffuse, and Blinn
// specular against a non-local viewer, modulated by the bound texture.
const sceneFragmentShader = `#version 410 core
in vec3 vEyePos;
in vec3 vNormal;
in vec2 vTexCoord;

uniform vec3 uLightEyePos;
uniform vec3 uLightAmbient;
uniform vec3 uLightDiffuse;
uniform vec3 uLightSpecular;
uniform vec3 uGlobalAmbient;

uniform vec3 uMatAmbient;
uniform vec3 uMatDiffuse;
uniform vec3 uMatSpecular;
uniform float uShininess;

uniform bool uTextured;
uniform sampler2D uTexture;

out vec4 FragColor;

void main() {
    vec3 N = normalize(vNormal);
    vec3 L = normalize(uLightEyePos - vEyePos);
    vec3 H = normalize(L + vec3(0.0, 0.0, 1.0));

    float NdotL = max(dot(N, L), 0.0);
    float spec = 0.0;
    if (NdotL > 0.0) {
        spec = pow(max(dot(N, H), 0.0), uShininess);
    }

    vec3 color = uGlobalAmbient * uMatAmbient
               + uLightAmbient * uMatAmbient
               + uLightDiffuse * uMatDiffuse * NdotL
               + uLightSpecular * uMatSpecular * spec;

    if (uTextured) {
        color *= texture(uTexture, vTexCoord).rgb;
    }

    FragColor = vec4(clamp(color, 0.0, 1.0), 1.0);
}
`
