package tilemap

// DefaultMaze is the classic training maze: a walled rectangle with blocks
// and pipes inside and a single power-up in the bottom-right corner.
var DefaultMaze = []string{
	"1---------2",
	"|.........|",
	"|.b.[7].b.|",
	"|...._....|",
	"|.[]...[].|",
	"|....^....|",
	"|.b.[+].b.|",
	"|...._....|",
	"|.[]...[].|",
	"|....^....|",
	"|.b.[5].b.|",
	"|........p|",
	"4---------3",
}
