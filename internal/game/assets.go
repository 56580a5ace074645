package game

import (
	"fmt"
	"math/rand"
)

// Word pools for generated goals and starting images. Kept cartoonish on
// purpose; the image pipeline only ever sees these as prompt text.

var Animals = []string{
	"A disco-dancing penguin",
	"A space-traveling hamster",
	"A surfing giraffe",
	"A monocle-wearing octopus",
	"A skateboarding bulldog",
	"A wizard cat",
	"A weightlifting bunny",
	"A scuba-diving elephant",
	"A jetpack-wearing sloth",
	"A breakdancing turtle",
	"A karate-chopping kangaroo",
	"A DJ-ing dolphin",
	"A detective owl",
	"A chef raccoon",
	"A ballerina hippo",
}

var Objects = []string{
	"A giant floating taco",
	"A sentient toaster",
	"A rocket-powered unicycle",
	"A crystal ball with a smiley face",
	"A rubber ducky with a crown",
	"A marshmallow castle",
	"A flying pizza slice",
	"A neon-glowing boombox",
	"A teapot that breathes bubbles",
	"A pair of sneakers with wings",
	"A golden banana trophy",
	"A hoverboard made of cookies",
	"A magic wand that shoots confetti",
	"A backpack full of rainbows",
	"A telescope that sees into the future",
}

var Locations = []string{
	"in outer space",
	"on a tropical beach",
	"inside a giant candy bowl",
	"on top of a snowy mountain",
	"under the ocean",
	"in a futuristic neon city",
	"in a magical forest",
	"on a floating island",
	"at a robot disco",
	"inside a giant bubble",
	"at a dinosaur tea party",
	"on a cloud made of cotton candy",
	"inside a giant clock",
	"at a carnival for aliens",
	"in a library of floating books",
}

var Modifiers = []string{
	"wearing a top hat",
	"holding a lightsaber",
	"wearing sunglasses",
	"riding a skateboard",
	"eating a pizza",
	"on fire (safely)",
	"covered in glitter",
	"wearing a cape",
	"holding a balloon",
	"wearing clown shoes",
	"surrounded by butterflies",
	"holding a sign that says 'Help'",
	"wearing a tutu",
	"holding a rubber chicken",
	"wearing a space helmet",
	"that is giant",
	"that is tiny",
	"that is glowing green",
	"that is invisible (mostly)",
	"made of jelly",
}

// GenerateAssets produces the communal goal description and one simple
// starting object per player.
func GenerateAssets(playerCount int) (goal string, playerObjects []string) {
	animal := Animals[rand.Intn(len(Animals))]
	object := Objects[rand.Intn(len(Objects))]
	location := Locations[rand.Intn(len(Locations))]

	goal = fmt.Sprintf("%s holding %s %s", animal, object, location)

	pool := make([]string, 0, len(Animals)+len(Objects))
	pool = append(pool, Animals...)
	pool = append(pool, Objects...)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if playerCount > len(pool) {
		playerCount = len(pool)
	}
	playerObjects = pool[:playerCount]

	return goal, playerObjects
}

// GenerateModificationOptions returns four random modifiers to offer the
// current player.
func GenerateModificationOptions() []string {
	options := make([]string, len(Modifiers))
	copy(options, Modifiers)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options[:4]
}

// ApplyModification combines an object description with a chosen modifier.
func ApplyModification(object, modifier string) string {
	return fmt.Sprintf("%s %s", object, modifier)
}
