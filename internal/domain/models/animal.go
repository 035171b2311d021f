package models

import "time"

// AnimalStatus tracks where an animal stands in the herd lifecycle.
type AnimalStatus string

const (
	AnimalActive AnimalStatus = "active"
	AnimalSold   AnimalStatus = "sold"
	AnimalDead   AnimalStatus = "dead"
)

// Animal is one tracked head of livestock. It exclusively owns its fattening
// episodes; episode history is append-only.
type Animal struct {
	TagID        string             `bson:"tagId" json:"tagId"`
	Breed        string             `bson:"breed" json:"breed"`
	Sex          string             `bson:"sex" json:"sex"`
	DOB          time.Time          `bson:"dob" json:"dob"`
	Status       AnimalStatus       `bson:"status" json:"status"`
	HealthStatus string             `bson:"healthStatus" json:"healthStatus"`
	Episodes     []FatteningEpisode `bson:"episodes" json:"episodes"`
}

// ActiveEpisode returns the index of the active episode, or -1 when none is
// active. At most one episode is active at any time.
func (a Animal) ActiveEpisode() int {
	for i := range a.Episodes {
		if a.Episodes[i].IsActive {
			return i
		}
	}
	return -1
}
