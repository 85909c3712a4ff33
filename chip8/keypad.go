package chip8

/// KeypadState is the pressed/released bitmap for the 16-key hex pad.
/// The input collaborator refreshes it once per presentation cycle;
/// the interpreter only ever reads it.
///
type KeypadState struct {
	keys [16]bool
}

/// SetPressed marks a key down or up. Keys outside 0-F are ignored.
///
func (k *KeypadState) SetPressed(key byte, down bool) {
	if key < 16 {
		k.keys[key] = down
	}
}

/// Pressed reports whether a key is currently down.
///
func (k *KeypadState) Pressed(key byte) bool {
	return key < 16 && k.keys[key]
}

/// FirstPressed returns the lowest key index currently down. It is
/// how the wait-for-key instruction picks a key when several are held.
///
func (k *KeypadState) FirstPressed() (byte, bool) {
	for i, down := range k.keys {
		if down {
			return byte(i), true
		}
	}

	return 0, false
}

/// Reset releases every key.
///
func (k *KeypadState) Reset() {
	k.keys = [16]bool{}
}
