// Package models selects AI segmentation models from the host application's
// catalog: exact-identifier resolution with newest-version fallback, search
// keyword extraction from model titles, and order-preserving listing helpers.
package models

// Descriptor describes one selectable segmentation model as published by the
// host application's registry. Descriptors are owned and mutated by the host;
// this package only reads them.
type Descriptor struct {
	ID              string `json:"id" yaml:"id"`
	Title           string `json:"title" yaml:"title"`
	Version         string `json:"version" yaml:"version"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	ImagingModality string `json:"imagingModality,omitempty" yaml:"imagingModality,omitempty"`
	Deprecated      bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// Collection is the ordered model catalog owned by the host application.
// For any base name, the host lists non-deprecated descriptors newest version
// first; resolution trusts this order and never compares versions itself.
type Collection []Descriptor
