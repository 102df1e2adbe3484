package renderer

// Mesh shader: physically based diffuse plus GGX specular under point lights.
// Albedo is uColor times the sRGB color map; output is gamma encoded.
const meshVertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uModel;
uniform mat4 uViewProj;
uniform mat3 uNormalMatrix;

out vec3 vWorldPos;
out vec3 vNormal;
out vec2 vTexCoord;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    vNormal = normalize(uNormalMatrix * aNormal);
    vTexCoord = aTexCoord;
    gl_Position = uViewProj * world;
}
`

const meshFragmentSrc = `
#version 410 core

#define MAX_LIGHTS 4
#define PI 3.14159265

in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vTexCoord;

uniform sampler2D uMap;
uniform vec3 uColor;
uniform float uRoughness;
uniform vec3 uCameraPos;

uniform int uLightCount;
uniform vec3 uLightPos[MAX_LIGHTS];
uniform vec3 uLightColor[MAX_LIGHTS];
uniform vec2 uLightFalloff[MAX_LIGHTS]; // distance, decay

out vec4 FragColor;

float attenuation(float d, float cutoff, float decay) {
    float falloff = 1.0 / pow(max(d, 0.01), decay);
    if (cutoff > 0.0) {
        float r = d / cutoff;
        float w = clamp(1.0 - r * r * r * r, 0.0, 1.0);
        falloff *= w * w;
    }
    return falloff;
}

float distributionGGX(float NdotH, float alpha) {
    float a2 = alpha * alpha;
    float d = NdotH * NdotH * (a2 - 1.0) + 1.0;
    return a2 / (PI * d * d);
}

void main() {
    vec3 albedo = uColor * texture(uMap, vTexCoord).rgb;
    vec3 N = normalize(vNormal);
    vec3 V = normalize(uCameraPos - vWorldPos);
    float alpha = max(uRoughness * uRoughness, 0.02);

    vec3 color = vec3(0.0);
    for (int i = 0; i < uLightCount; i++) {
        vec3 toLight = uLightPos[i] - vWorldPos;
        float d = length(toLight);
        vec3 L = toLight / d;
        float NdotL = max(dot(N, L), 0.0);
        if (NdotL <= 0.0) {
            continue;
        }
        vec3 H = normalize(L + V);
        float NdotH = max(dot(N, H), 0.0);

        vec3 irradiance = uLightColor[i] * NdotL * attenuation(d, uLightFalloff[i].x, uLightFalloff[i].y);
        vec3 diffuse = albedo / PI;
        float spec = 0.04 * distributionGGX(NdotH, alpha) * 0.25;
        color += (diffuse + vec3(spec)) * irradiance;
    }

    FragColor = vec4(pow(color, vec3(1.0 / 2.2)), 1.0);
}
`

// Overlay shader: screen-space quads, either solid or sampling a text mask.
const overlayVertexSrc = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

uniform mat4 uProjection;

out vec2 vUV;

void main() {
    gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
    vUV = aUV;
}
`

const overlayFragmentSrc = `
#version 410 core

in vec2 vUV;

uniform vec4 uColor;
uniform int uTextured;
uniform sampler2D uTexture;

out vec4 FragColor;

void main() {
    float a = 1.0;
    if (uTextured == 1) {
        a = texture(uTexture, vUV).a;
    }
    FragColor = vec4(uColor.rgb, uColor.a * a);
}
`
