package friends

import "github.com/zhubert/eatnsplit/internal/money"

// DefaultAvatarURL is the image URL the add-friend form starts with.
const DefaultAvatarURL = "https://i.pravatar.cc/48"

// Seed returns the friends the roster starts with. Each call returns a
// fresh slice.
func Seed() []Friend {
	return []Friend{
		{
			ID:      "118836",
			Name:    "Clark",
			Image:   "https://i.pravatar.cc/48?u=118836",
			Balance: money.FromInt(-7),
		},
		{
			ID:      "933372",
			Name:    "Sarah",
			Image:   "https://i.pravatar.cc/48?u=933372",
			Balance: money.FromInt(20),
		},
		{
			ID:      "499476",
			Name:    "Anthony",
			Image:   "https://i.pravatar.cc/48?u=499476",
			Balance: money.Zero,
		},
	}
}
