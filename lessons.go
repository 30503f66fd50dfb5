package glsteps

import (
	"fmt"
	"sort"
)

// Shader file names shared by the lessons.
const (
	VertexShaderFile     = "shader.vert"
	FragmentShaderFile   = "shader.frag"
	FragmentShaderFileT1 = "shader_t1.frag"
	FragmentShaderFileT2 = "shader_t2.frag"
)

// PassSpec describes a pass before it is built.
type PassSpec struct {
	Name           string
	Mesh           Mesh
	VertexShader   string // file name relative to the shader directory
	FragmentShader string
}

// Lesson is one step of the bring-up sequence.
type Lesson struct {
	Name        string
	Description string

	// Probe shaders are compiled and checked but never linked or drawn.
	Probe []string

	Passes []PassSpec
}

// Files returns every shader file the lesson reads, without duplicates.
func (l Lesson) Files() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}
	for _, name := range l.Probe {
		add(name)
	}
	for _, p := range l.Passes {
		add(p.VertexShader)
		add(p.FragmentShader)
	}
	return out
}

var lessons = map[string]Lesson{
	"window": {
		Name:        "window",
		Description: "clear the window and compile the vertex shader",
		Probe:       []string{VertexShaderFile},
	},
	"triangle": {
		Name:        "triangle",
		Description: "one triangle with a vertex and fragment shader",
		Passes: []PassSpec{{
			Name:           "triangle",
			Mesh:           TriangleMesh,
			VertexShader:   VertexShaderFile,
			FragmentShader: FragmentShaderFile,
		}},
	},
	"rectangle": {
		Name:        "rectangle",
		Description: "indexed quad; press 1 for wireframe, 2 for fill",
		Passes: []PassSpec{{
			Name:           "rectangle",
			Mesh:           RectangleMesh,
			VertexShader:   VertexShaderFile,
			FragmentShader: FragmentShaderFile,
		}},
	},
	"two-programs": {
		Name:        "two-programs",
		Description: "two triangles drawn with two shader programs",
		Passes: []PassSpec{
			{
				Name:           "left",
				Mesh:           LeftTriangleMesh,
				VertexShader:   VertexShaderFile,
				FragmentShader: FragmentShaderFileT1,
			},
			{
				Name:           "right",
				Mesh:           RightTriangleMesh,
				VertexShader:   VertexShaderFile,
				FragmentShader: FragmentShaderFileT2,
			},
		},
	},
}

// LookupLesson returns the lesson with the given name.
func LookupLesson(name string) (Lesson, error) {
	l, ok := lessons[name]
	if !ok {
		return Lesson{}, fmt.Errorf("%w: %q", ErrUnknownLesson, name)
	}
	return l, nil
}

// Lessons returns every lesson sorted by name.
func Lessons() []Lesson {
	out := make([]Lesson, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
