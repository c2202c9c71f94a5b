package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayHUD      OverlayID = "hud"
	OverlaySlotHits OverlayID = "slot_hits"
	OverlayOutlines OverlayID = "outlines"
	OverlayEffects  OverlayID = "effects"
	OverlayControls OverlayID = "controls"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID       OverlayID // Unique identifier
	Name     string    // Display name
	Key      int32     // Keyboard key to toggle (0 = no key)
	KeyLabel string    // Key label for display
	Category string    // Grouping in the controls panel (e.g., "visual", "debug")
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with default overlays.
// The HUD, effects and controls panel start enabled.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	reg.SetEnabled(OverlayHUD, true)
	reg.SetEnabled(OverlayEffects, true)
	reg.SetEnabled(OverlayControls, true)
	return reg
}

func (r *OverlayRegistry) registerDefaults() {
	r.Register(OverlayDescriptor{ID: OverlayHUD, Name: "HUD", Key: rl.KeyH, KeyLabel: "H", Category: "visual"})
	r.Register(OverlayDescriptor{ID: OverlayEffects, Name: "Effects", Key: rl.KeyE, KeyLabel: "E", Category: "visual"})
	r.Register(OverlayDescriptor{ID: OverlayControls, Name: "Controls", Key: rl.KeyTab, KeyLabel: "Tab", Category: "visual"})
	r.Register(OverlayDescriptor{ID: OverlaySlotHits, Name: "Slot Hits", Key: rl.KeyS, KeyLabel: "S", Category: "debug"})
	r.Register(OverlayDescriptor{ID: OverlayOutlines, Name: "Outlines", Key: rl.KeyO, KeyLabel: "O", Category: "debug"})
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = false
}

// Toggle switches an overlay on/off.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.SetEnabled(id, !r.enabled[id])
	return r.enabled[id]
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	if _, ok := r.byID[id]; !ok {
		return
	}
	r.enabled[id] = enabled
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// Categories returns the overlay categories in order of first registration.
func (r *OverlayRegistry) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			out = append(out, desc.Category)
		}
	}
	return out
}

// InCategory returns the overlays of one category in registration order.
func (r *OverlayRegistry) InCategory(category string) []OverlayDescriptor {
	var out []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			out = append(out, desc)
		}
	}
	return out
}

// HandleKeys toggles every overlay whose key was pressed this frame.
func (r *OverlayRegistry) HandleKeys() {
	for _, desc := range r.descriptors {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			r.Toggle(desc.ID)
		}
	}
}
