package container

import (
	"github.com/noisebase/noisebase/formats/varint"
)

// Container is a byte slice gatherer that allows for cheap appending of data chunks and compiles them into a single slice only when needed.
type Container struct {
	compartments [][]byte
}

// New creates a new container with the given data chunks. Data will NOT be copied.
func New(data ...[]byte) *Container {
	return &Container{
		compartments: data,
	}
}

// Append appends the given data. Data will NOT be copied.
func (c *Container) Append(data []byte) {
	c.compartments = append(c.compartments, data)
}

// AppendNumber appends a number (varint encoded).
func (c *Container) AppendNumber(n uint64) {
	c.compartments = append(c.compartments, varint.Pack64(n))
}

// AppendAsBlock appends the length of the data and the data itself. Data will NOT be copied.
func (c *Container) AppendAsBlock(data []byte) {
	c.AppendNumber(uint64(len(data)))
	c.Append(data)
}

// Length returns the full length of all bytes held by the container.
func (c *Container) Length() (length int) {
	for _, compartment := range c.compartments {
		length += len(compartment)
	}
	return
}

// CompileData concatenates all bytes held by the container and returns them as a single slice. The container is reset to hold only the compiled slice.
func (c *Container) CompileData() []byte {
	if len(c.compartments) == 0 {
		return nil
	}
	if len(c.compartments) != 1 {
		newBuf := make([]byte, 0, c.Length())
		for _, compartment := range c.compartments {
			newBuf = append(newBuf, compartment...)
		}
		c.compartments = [][]byte{newBuf}
	}
	return c.compartments[0]
}

// Reset empties the container.
func (c *Container) Reset() {
	c.compartments = c.compartments[:0]
}
