package platform

import (
	"strings"
)

// KeyCode identifies a keyboard key or a pointer button.
type KeyCode int

//go:generate go tool stringer -linecomment -type=KeyCode
const (
	KEY_NONE         = KeyCode(0)  // None
	KEY_A            = KeyCode(1)  // A
	KEY_B            = KeyCode(2)  // B
	KEY_C            = KeyCode(3)  // C
	KEY_D            = KeyCode(4)  // D
	KEY_E            = KeyCode(5)  // E
	KEY_F            = KeyCode(6)  // F
	KEY_G            = KeyCode(7)  // G
	KEY_H            = KeyCode(8)  // H
	KEY_I            = KeyCode(9)  // I
	KEY_J            = KeyCode(10) // J
	KEY_K            = KeyCode(11) // K
	KEY_L            = KeyCode(12) // L
	KEY_M            = KeyCode(13) // M
	KEY_N            = KeyCode(14) // N
	KEY_O            = KeyCode(15) // O
	KEY_P            = KeyCode(16) // P
	KEY_Q            = KeyCode(17) // Q
	KEY_R            = KeyCode(18) // R
	KEY_S            = KeyCode(19) // S
	KEY_T            = KeyCode(20) // T
	KEY_U            = KeyCode(21) // U
	KEY_V            = KeyCode(22) // V
	KEY_W            = KeyCode(23) // W
	KEY_X            = KeyCode(24) // X
	KEY_Y            = KeyCode(25) // Y
	KEY_Z            = KeyCode(26) // Z
	KEY_F1           = KeyCode(27) // F1
	KEY_F2           = KeyCode(28) // F2
	KEY_F3           = KeyCode(29) // F3
	KEY_F4           = KeyCode(30) // F4
	KEY_F5           = KeyCode(31) // F5
	KEY_F6           = KeyCode(32) // F6
	KEY_F7           = KeyCode(33) // F7
	KEY_F8           = KeyCode(34) // F8
	KEY_F9           = KeyCode(35) // F9
	KEY_F10          = KeyCode(36) // F10
	KEY_F11          = KeyCode(37) // F11
	KEY_F12          = KeyCode(38) // F12
	KEY_ENTER        = KeyCode(39) // Enter
	KEY_ESCAPE       = KeyCode(40) // Escape
	KEY_BACKSPACE    = KeyCode(41) // Backspace
	KEY_TAB          = KeyCode(42) // Tab
	KEY_SPACE        = KeyCode(43) // Space
	KEY_PAUSE        = KeyCode(44) // Pause
	KEY_INSERT       = KeyCode(45) // Insert
	KEY_HOME         = KeyCode(46) // Home
	KEY_PAGE_UP      = KeyCode(47) // PageUp
	KEY_DELETE       = KeyCode(48) // Delete
	KEY_END          = KeyCode(49) // End
	KEY_PAGE_DOWN    = KeyCode(50) // PageDown
	KEY_RIGHT        = KeyCode(51) // Right
	KEY_LEFT         = KeyCode(52) // Left
	KEY_DOWN         = KeyCode(53) // Down
	KEY_UP           = KeyCode(54) // Up
	KEY_MOUSE_LEFT   = KeyCode(55) // MouseLeft
	KEY_MOUSE_RIGHT  = KeyCode(56) // MouseRight
	KEY_MOUSE_MIDDLE = KeyCode(57) // MouseMiddle
)

// ParseKeyCode returns the key named name, ignoring case.
func ParseKeyCode(name string) (key KeyCode, ok bool) {
	for n := range KeyCode(len(_KeyCode_index) - 1) {
		if strings.EqualFold(n.String(), name) {
			return n, true
		}
	}

	return
}
