package kernels

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Family groups presets by the kind of kernel they name. It is descriptive
// only; the convolution function does not look at it.
type Family string

const (
	FamilyLineDetection Family = "line_detection"
	FamilyGradient      Family = "gradient"
	FamilySmoothing     Family = "smoothing"
	FamilySharpening    Family = "sharpening"
	FamilyLaplacian     Family = "laplacian"
	FamilySobel         Family = "sobel"
	FamilyPointSpread   Family = "point_spread"
)

// Families returns every family in the order its first preset appears.
func Families() []Family {
	return []Family{
		FamilyLineDetection,
		FamilyGradient,
		FamilySmoothing,
		FamilySharpening,
		FamilyLaplacian,
		FamilySobel,
		FamilyPointSpread,
	}
}

// ParseFamily returns the family for s, matched case-insensitively.
func ParseFamily(s string) (Family, bool) {
	f := Family(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Families() {
		if f == known {
			return f, true
		}
	}
	return "", false
}

// Namespace is the UUIDv5 namespace for preset UUIDs.
var Namespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("kernels.rasterkernels.thirdcoast.systems"))

var (
	labels [Count]string
	ids    [Count]uuid.UUID
)

func init() {
	// cases.Caser is stateful, so labels are built once here.
	title := cases.Title(language.English)
	for code, name := range names {
		words := strings.Split(strings.ToLower(name), "_")
		for i, w := range words {
			if w != "" && unicode.IsLetter(rune(w[0])) {
				words[i] = title.String(w)
			}
		}
		labels[code] = strings.Join(words, " ")
		ids[code] = uuid.NewSHA1(Namespace, []byte(name))
	}
}

// Label returns a human-readable label such as "Sobel Vertical".
func (p Preset) Label() string {
	if !p.Valid() {
		return ""
	}
	return labels[p]
}

// Family returns the group the preset belongs to.
func (p Preset) Family() Family {
	name := p.Name()
	switch {
	case name == "":
		return ""
	case strings.HasPrefix(name, "LINE_DETECTION_"):
		return FamilyLineDetection
	case strings.HasPrefix(name, "GRADIENT_"):
		return FamilyGradient
	case strings.HasPrefix(name, "SMOOTH"):
		return FamilySmoothing
	case strings.HasPrefix(name, "SHARPEN"):
		return FamilySharpening
	case strings.HasPrefix(name, "LAPLACIAN_"):
		return FamilyLaplacian
	case strings.HasPrefix(name, "SOBEL_"):
		return FamilySobel
	default:
		return FamilyPointSpread
	}
}

// UUID returns a deterministic UUIDv5 for p in Namespace, named by the
// canonical name. Invalid presets return uuid.Nil.
func (p Preset) UUID() uuid.UUID {
	if !p.Valid() {
		return uuid.Nil
	}
	return ids[p]
}

// Descriptor is the exported view of a preset used by the HTTP API, the CLI
// and the catalogue.
type Descriptor struct {
	Code   int       `json:"code" yaml:"code"`
	Name   string    `json:"name" yaml:"name"`
	Label  string    `json:"label" yaml:"label"`
	Family Family    `json:"family" yaml:"family"`
	UUID   uuid.UUID `json:"uuid" yaml:"uuid"`
}

// Describe returns the descriptor for p.
func Describe(p Preset) Descriptor {
	return Descriptor{
		Code:   p.Code(),
		Name:   p.Name(),
		Label:  p.Label(),
		Family: p.Family(),
		UUID:   p.UUID(),
	}
}

// Catalog returns descriptors for every preset in code order.
func Catalog() []Descriptor {
	out := make([]Descriptor, 0, Count)
	for _, p := range All() {
		out = append(out, Describe(p))
	}
	return out
}

// InFamily returns the presets of f in code order.
func InFamily(f Family) []Preset {
	var out []Preset
	for _, p := range All() {
		if p.Family() == f {
			out = append(out, p)
		}
	}
	return out
}
