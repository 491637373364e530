package models

// All returns every persistence model in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&SessionModel{},
		&UserFollowModel{},
		&ClubModel{},
		&ClubFollowModel{},
		&ClubJoinRequestModel{},
		&PostModel{},
		&PostImageModel{},
		&PostCommentModel{},
		&PostLikeModel{},
		&HikeModel{},
		&TripModel{},
		&HikeHypeModel{},
		&HikeImageModel{},
		&BicycleModel{},
		&SubsModel{},
	}
}
