package render

// Tokyo Night derived palette
var (
	RgbBackground   = RGB{26, 27, 38}
	RgbPanel        = RGB{36, 40, 59}
	RgbPanelTitle   = RGB{192, 202, 245}
	RgbLocked       = RGB{65, 72, 104}
	RgbLockedGlyph  = RGB{110, 118, 150}
	RgbTrash        = RGB{80, 30, 40}
	RgbTrashBorder  = RGB{247, 118, 142}
	RgbDragOutline  = RGB{255, 255, 255}
	RgbStatusBar    = RGB{22, 22, 30}
	RgbStatusText   = RGB{169, 177, 214}
	RgbDiscovery    = RGB{224, 175, 104}
	RgbMuted        = RGB{247, 118, 142}
	RgbAudioOn      = RGB{158, 206, 106}
	RgbDebugBg      = RGB{16, 16, 24}
	RgbDebugKey     = RGB{122, 162, 247}
	RgbDebugValue   = RGB{192, 202, 245}
	RgbTextDark     = RGB{16, 16, 24}
	RgbTextLight    = RGB{230, 230, 240}
	RgbIconFallback = RGB{128, 128, 128}
)
