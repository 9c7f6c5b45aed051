package triggers

import (
	"github.com/Carmen-Shannon/strider-go/engine/audio"
	"github.com/Carmen-Shannon/strider-go/engine/scenegraph"
)

// Collectibles counts picked-up items against the level total.
type Collectibles struct {
	collected int
	total     int
	sound     audio.Player
}

// NewCollectibles creates a counter for a level holding total collectibles.
// Pass a nil player to collect silently.
//
// Parameters:
//   - total: the number of collectibles placed in the level
//   - sound: the player that receives the pickup cue (optional)
//
// Returns:
//   - *Collectibles: the newly created counter
func NewCollectibles(total int, sound audio.Player) *Collectibles {
	if sound == nil {
		sound = audio.NullPlayer{}
	}
	return &Collectibles{total: total, sound: sound}
}

// Collect records one pickup and plays the pickup cue.
func (c *Collectibles) Collect() {
	c.collected++
	c.sound.Play(audio.CueCollect)
}

// Collected returns the number of items picked up so far.
//
// Returns:
//   - int: the pickup count
func (c *Collectibles) Collected() int {
	return c.collected
}

// Total returns the number of collectibles in the level.
//
// Returns:
//   - int: the level total
func (c *Collectibles) Total() int {
	return c.total
}

// Complete reports whether every collectible has been picked up.
//
// Returns:
//   - bool: true once collected reaches the total
func (c *Collectibles) Complete() bool {
	return c.total > 0 && c.collected >= c.total
}

// NewPickupVolume builds the one-shot pickup volume for one collectible
// node: entering it records the pickup on the counter.
//
// Parameters:
//   - node: the collectible's scene node
//   - radius: the pickup radius
//   - counter: the collectibles counter to record on
//
// Returns:
//   - Volume: the volume to register with a Manager
func NewPickupVolume(node scenegraph.Node, radius float32, counter *Collectibles) Volume {
	return Volume{
		Name:    node.Name(),
		Node:    node,
		Radius:  radius,
		OneShot: true,
		OnEnter: counter.Collect,
	}
}
