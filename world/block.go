package world

// Block describes a single voxel occupying a unit cube of the world grid.
// The zero value is air.
type Block struct {
	Name       string
	Collidable bool
}

// The default block set. Air is the absence of a block and has no
// descriptor.
var (
	Grass = Block{Name: "grass", Collidable: true}
	Sand  = Block{Name: "sand", Collidable: true}
	Brick = Block{Name: "brick", Collidable: true}
	Stone = Block{Name: "stone", Collidable: true}

	// Cloud blocks render as geometry but are flown through freely.
	Cloud = Block{Name: "cloud", Collidable: false}
)

// Air reports whether the block is empty space.
func (b Block) Air() bool {
	return b.Name == ""
}
