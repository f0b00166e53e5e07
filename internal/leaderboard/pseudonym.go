package leaderboard

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// pseudonymVersion is folded into the hash so the mapping can be rotated
// without touching the word lists.
const pseudonymVersion = "v1"

var animals = []string{
	"Eco-Eagle", "Green-Gecko", "Solar-Sparrow", "Wind-Wolf", "Ocean-Otter",
	"Forest-Fox", "River-Rabbit", "Mountain-Mouse", "Garden-Goose", "Desert-Deer",
	"Arctic-Ant", "Jungle-Jay", "Prairie-Panda", "Coral-Cat", "Meadow-Mole",
	"Valley-Viper", "Canyon-Crane", "Tundra-Tiger", "Savanna-Swan", "Reef-Raven",
}

var adjectives = []string{
	"Mighty", "Swift", "Wise", "Bold", "Gentle", "Bright", "Noble", "Calm",
	"Keen", "Brave", "Quick", "Smart", "Kind", "Strong", "Pure", "Free",
}

// GeneratePseudonym derives a stable display name from a user id. The same
// id always yields the same pseudonym and the id is never recoverable from it.
func GeneratePseudonym(userID string) string {
	sum := sha256.Sum256([]byte(pseudonymVersion + ":" + userID))
	hashVal := binary.BigEndian.Uint64(sum[:8]) % 10000

	animal := animals[hashVal%uint64(len(animals))]
	adjective := adjectives[(hashVal/uint64(len(animals)))%uint64(len(adjectives))]
	number := (hashVal / uint64(len(animals)*len(adjectives))) % 100

	return fmt.Sprintf("%s-%s-%02d", adjective, animal, number)
}
