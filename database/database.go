package database

// Database bundles the typed repositories over one shared slot store.
type Database struct {
	projectRepo       *ProjectRepo
	certificationRepo *CertificationRepo
	chatLogRepo       *ChatLogRepo
	adminFlagRepo     *AdminFlagRepo
}

// New initializes a new Database struct with each repository using a shared slot store
func New(store SlotStore) Database {
	return Database{
		projectRepo:       NewProjectRepo(store),
		certificationRepo: NewCertificationRepo(store),
		chatLogRepo:       NewChatLogRepo(store),
		adminFlagRepo:     NewAdminFlagRepo(store),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CertificationRepo() *CertificationRepo {
	return d.certificationRepo
}

func (d Database) ChatLogRepo() *ChatLogRepo {
	return d.chatLogRepo
}

func (d Database) AdminFlagRepo() *AdminFlagRepo {
	return d.adminFlagRepo
}
