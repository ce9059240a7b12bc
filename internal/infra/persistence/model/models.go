package model

// All returns every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&AddressModel{},
		&ResourceModel{},
		&RoleModel{},
		&AccountModel{},
		&OrganizationModel{},
		&UserModel{},
		&PostModel{},
		&EventModel{},
		&MembershipModel{},
		&RSVPModel{},
		&CommentModel{},
		&SessionModel{},
		&ShareModel{},
		&NotificationModel{},
	}
}
