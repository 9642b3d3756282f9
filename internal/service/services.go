package service

import (
	"github.com/MKhiriev/ether-notes/internal/chain"
	"github.com/MKhiriev/ether-notes/internal/config"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/store"
	"github.com/MKhiriev/ether-notes/internal/utils"
	"github.com/MKhiriev/ether-notes/internal/validators"
	"github.com/MKhiriev/ether-notes/models"
)

// ClientServices groups the use cases of the terminal client.
type ClientServices struct {
	NotesService NotesService
}

func NewClientServices(notesClient chain.NotesClient, names chain.NameResolver, storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		NotesService: NewNotesService(
			notesClient,
			names,
			storages.Notes,
			storages.Txs,
			validators.NewNoteValidator(),
			utils.NewUUIDGenerator(),
			logger,
		),
	}
}

// Services groups the use cases of the gateway.
type Services struct {
	GatewayService GatewayService
	AppInfoService AppInfoService
}

func NewServices(notesClient chain.NotesClient, names chain.NameResolver, notes store.NoteRepository, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		GatewayService: NewGatewayService(notesClient, names, notes, logger),
		AppInfoService: appInfo,
	}, nil
}
