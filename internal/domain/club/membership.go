package club

import "time"

// JoinRequest is a pending application of a user to a club. There is at most one
// per (user, club) pair; it is hard-deleted on accept, deny or club deletion.
type JoinRequest struct {
	UserID    uint
	ClubID    uint
	CreatedAt time.Time
}

// Follow is the "interested in" relation between a user and a club,
// independent of membership.
type Follow struct {
	UserID    uint
	ClubID    uint
	CreatedAt time.Time
}

// AssetPaths collects stored objects owned by a club and its content. They are
// removed from object storage after the club deletion commits.
type AssetPaths []string

func (a *AssetPaths) Add(paths ...string) {
	for _, p := range paths {
		if p != "" {
			*a = append(*a, p)
		}
	}
}
