// Package model holds the GORM persistence structs. They never leave the
// infra layer; repositories map them to domain entities.
package model

// All lists every model in dependency order for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&RecoveryTokenModel{},
		&ProfileModel{},
		&PostModel{},
		&SavedPostModel{},
		&ConversationModel{},
		&ParticipantModel{},
		&MessageModel{},
		&WaitlistModel{},
		&UserDeviceModel{},
	}
}
