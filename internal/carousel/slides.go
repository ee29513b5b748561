package carousel

import "strings"

// ImageSet holds one optional image URL per device class.
type ImageSet struct {
	Mobile  *string `json:"mobile,omitempty" yaml:"mobile,omitempty"`
	Tablet  *string `json:"tablet,omitempty" yaml:"tablet,omitempty"`
	Desktop *string `json:"desktop,omitempty" yaml:"desktop,omitempty"`
}

// For returns the image for class, or nil when none is set.
func (s ImageSet) For(class DeviceClass) *string {
	var url *string
	switch class {
	case Mobile:
		url = s.Mobile
	case Tablet:
		url = s.Tablet
	default:
		url = s.Desktop
	}
	if url == nil || strings.TrimSpace(*url) == "" {
		return nil
	}
	return url
}

// SlideSource is a slide record as supplied by the content collaborator.
type SlideSource struct {
	Title  string   `json:"title" yaml:"title"`
	Images ImageSet `json:"images" yaml:"images"`
	Link   *string  `json:"link,omitempty" yaml:"link,omitempty"`
}

// DisplaySlide is a slide resolved for one device class.
type DisplaySlide struct {
	ImageURL *string
	Alt      string
	Link     *string
}

// HasImage reports whether the slide has an image for its class. Slides
// without one keep their slot and render a placeholder.
func (d DisplaySlide) HasImage() bool {
	return d.ImageURL != nil
}

// HasLink reports whether the slide is clickable.
func (d DisplaySlide) HasLink() bool {
	return d.Link != nil && strings.TrimSpace(*d.Link) != ""
}

// Project resolves every source slide for class. The result always has the
// same length as src and never aliases it.
func Project(src []SlideSource, class DeviceClass) []DisplaySlide {
	out := make([]DisplaySlide, len(src))
	for i, s := range src {
		out[i] = DisplaySlide{
			ImageURL: copyString(s.Images.For(class)),
			Alt:      s.Title,
			Link:     copyString(s.Link),
		}
	}
	return out
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneSources(src []SlideSource) []SlideSource {
	if len(src) == 0 {
		return nil
	}
	dup := make([]SlideSource, len(src))
	copy(dup, src)
	return dup
}
