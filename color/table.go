package color

// Launchpad Mk2/Pro palette, one entry per raw color code.
var defaultTable = [Size]RGB{
	// 0
	{0x00, 0x00, 0x00},
	{0x1c, 0x1c, 0x1c},
	{0x7c, 0x7c, 0x7c},
	{0xfc, 0xfc, 0xfc},
	{0xff, 0x4e, 0x48},
	{0xfe, 0x0a, 0x00},
	{0x5a, 0x00, 0x00},
	{0x18, 0x00, 0x02},
	// 8
	{0xff, 0xbc, 0x63},
	{0xff, 0x57, 0x00},
	{0x5a, 0x1d, 0x00},
	{0x24, 0x18, 0x02},
	{0xfd, 0xfd, 0x21},
	{0xfd, 0xfd, 0x00},
	{0x58, 0x58, 0x00},
	{0x18, 0x18, 0x00},
	// 16
	{0x81, 0xfd, 0x2b},
	{0x40, 0xfd, 0x01},
	{0x16, 0x58, 0x00},
	{0x13, 0x28, 0x01},
	{0x35, 0xfd, 0x2b},
	{0x00, 0xfe, 0x00},
	{0x00, 0x58, 0x01},
	{0x00, 0x18, 0x00},
	// 24
	{0x35, 0xfc, 0x47},
	{0x00, 0xfe, 0x00},
	{0x00, 0x58, 0x01},
	{0x00, 0x18, 0x00},
	{0x32, 0xfd, 0x7f},
	{0x00, 0xfd, 0x3a},
	{0x01, 0x58, 0x14},
	{0x00, 0x1c, 0x0e},
	// 32
	{0x2f, 0xfc, 0xb1},
	{0x00, 0xfb, 0x91},
	{0x01, 0x57, 0x32},
	{0x01, 0x18, 0x10},
	{0x39, 0xbe, 0xff},
	{0x00, 0xa7, 0xff},
	{0x01, 0x40, 0x51},
	{0x00, 0x10, 0x18},
	// 40
	{0x41, 0x86, 0xff},
	{0x00, 0x50, 0xff},
	{0x01, 0x1a, 0x5a},
	{0x01, 0x06, 0x19},
	{0x47, 0x47, 0xff},
	{0x00, 0x00, 0xfe},
	{0x00, 0x00, 0x5a},
	{0x00, 0x00, 0x18},
	// 48
	{0x83, 0x47, 0xff},
	{0x50, 0x00, 0xff},
	{0x16, 0x00, 0x67},
	{0x0a, 0x00, 0x32},
	{0xff, 0x48, 0xfe},
	{0xff, 0x00, 0xfe},
	{0x5a, 0x00, 0x5a},
	{0x18, 0x00, 0x18},
	// 56
	{0xfb, 0x4e, 0x83},
	{0xff, 0x07, 0x53},
	{0x5a, 0x02, 0x1b},
	{0x21, 0x01, 0x10},
	{0xff, 0x19, 0x01},
	{0x9a, 0x35, 0x00},
	{0x7a, 0x51, 0x01},
	{0x3e, 0x65, 0x00},
	// 64
	{0x01, 0x38, 0x00},
	{0x00, 0x54, 0x32},
	{0x00, 0x53, 0x7f},
	{0x00, 0x00, 0xfe},
	{0x01, 0x44, 0x4d},
	{0x1a, 0x00, 0xd1},
	{0x7c, 0x7c, 0x7c},
	{0x20, 0x20, 0x20},
	// 72
	{0xff, 0x0a, 0x00},
	{0xba, 0xfd, 0x00},
	{0xac, 0xec, 0x00},
	{0x56, 0xfd, 0x00},
	{0x00, 0x88, 0x00},
	{0x01, 0xfc, 0x7b},
	{0x00, 0xa7, 0xff},
	{0x02, 0x1a, 0xff},
	// 80
	{0x35, 0x00, 0xff},
	{0x78, 0x00, 0xff},
	{0xb4, 0x17, 0x7e},
	{0x41, 0x20, 0x00},
	{0xff, 0x4a, 0x01},
	{0x82, 0xe1, 0x00},
	{0x66, 0xfd, 0x00},
	{0x00, 0xfe, 0x00},
	// 88
	{0x00, 0xfe, 0x00},
	{0x45, 0xfd, 0x61},
	{0x01, 0xfb, 0xcb},
	{0x50, 0x86, 0xff},
	{0x27, 0x4d, 0xc8},
	{0x84, 0x7a, 0xed},
	{0xd3, 0x0c, 0xff},
	{0xff, 0x06, 0x5a},
	// 96
	{0xff, 0x7d, 0x01},
	{0xb8, 0xb1, 0x00},
	{0x8a, 0xfd, 0x00},
	{0x81, 0x5d, 0x00},
	{0x3a, 0x28, 0x02},
	{0x0d, 0x4c, 0x05},
	{0x00, 0x50, 0x37},
	{0x13, 0x14, 0x29},
	// 104
	{0x10, 0x1f, 0x5a},
	{0x6a, 0x3c, 0x18},
	{0xac, 0x04, 0x01},
	{0xe1, 0x51, 0x36},
	{0xdc, 0x69, 0x00},
	{0xfe, 0xe1, 0x00},
	{0x99, 0xe1, 0x01},
	{0x60, 0xb5, 0x00},
	// 112
	{0x1b, 0x1c, 0x31},
	{0xdc, 0xfd, 0x54},
	{0x76, 0xfb, 0xb9},
	{0x96, 0x98, 0xff},
	{0x8b, 0x62, 0xff},
	{0x40, 0x40, 0x40},
	{0x74, 0x74, 0x74},
	{0xde, 0xfc, 0xfc},
	// 120
	{0xa2, 0x04, 0x01},
	{0x34, 0x01, 0x00},
	{0x00, 0xd2, 0x01},
	{0x00, 0x41, 0x01},
	{0xb8, 0xb1, 0x00},
	{0x3c, 0x30, 0x00},
	{0xb4, 0x5d, 0x00},
	{0x4c, 0x13, 0x00},
}
