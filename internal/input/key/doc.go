// Package key provides the abstract key events consumed by the editing
// engine.
//
// Hosts translate their native input events into Event values:
//
//   - Key: identifies a key (Tab, Enter, Backspace, arrows) or KeyRune for
//     character keys, whose character is stored in Event.Rune
//   - Modifier: the modifier keys held (Shift, Ctrl, Alt, Meta)
//
// The engine names modifiers by role rather than by physical key: Ctrl is
// the primary modifier, Meta the secondary, Alt the tertiary, and Shift the
// shift-like modifier.
//
// # Key Specifications
//
// Events can be written as strings for bindings and tests:
//
//   - Simple keys: "a", "Z", "Enter", "Tab"
//   - With modifiers: "Ctrl+Z", "Ctrl+Shift+Z", "Meta+z"
package key
