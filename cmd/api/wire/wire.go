//go:build wireinject
// +build wireinject

package wire

import (
	cropsHTTPAPI "green-link/internal/crops/httpapi"
	cropsPersistence "green-link/internal/crops/persistence"
	cropsUsecases "green-link/internal/crops/usecases"
	"green-link/internal/infra/async"
	inventoryHTTPAPI "green-link/internal/inventory/httpapi"
	inventoryPersistence "green-link/internal/inventory/persistence"
	inventoryUsecases "green-link/internal/inventory/usecases"

	"github.com/google/wire"
)

var CropRepositorySet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	providePubSubFactory,
	providePublisherFactory,
	cropsPersistence.NewCropRepository,
	wire.Bind(new(cropsUsecases.CropRepository), new(*cropsPersistence.SimpleCropRepository)),
)

var ItemServiceSet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	providePubSubFactory,
	providePublisherFactory,
	provideClock,
	provideItemServiceConfig,
	inventoryPersistence.NewItemRepository,
	wire.Bind(new(inventoryUsecases.ItemRepository), new(*inventoryPersistence.SimpleItemRepository)),
	inventoryUsecases.NewItemService,
	wire.Bind(new(inventoryUsecases.ItemService), new(*inventoryUsecases.SimpleItemService)),
)

func InitializeCropController() (*cropsHTTPAPI.CropController, error) {
	wire.Build(
		CropRepositorySet,
		provideClock,
		cropsUsecases.NewCropService,
		wire.Bind(new(cropsUsecases.CropService), new(*cropsUsecases.SimpleCropService)),
		cropsHTTPAPI.NewCropController,
	)
	return nil, nil
}

func InitializeHarvestReminderWorker() (*cropsUsecases.HarvestReminderWorker, error) {
	wire.Build(
		CropRepositorySet,
		provideClock,
		provideTicker,
		provideNotificationClient,
		provideHarvestReminderConfig,
		cropsUsecases.NewHarvestReminderWorker,
	)
	return nil, nil
}

func InitializeItemController(broker async.InternalBroker) (*inventoryHTTPAPI.ItemController, error) {
	wire.Build(
		ItemServiceSet,
		inventoryHTTPAPI.NewItemController,
	)
	return nil, nil
}

func InitializeLowStockAlertWorker(broker async.InternalBroker) (*inventoryUsecases.LowStockAlertWorker, error) {
	wire.Build(
		provideAppConfig,
		provideNotificationClient,
		provideLowStockAlertConfig,
		inventoryUsecases.NewLowStockAlertWorker,
	)
	return nil, nil
}

func InitializeReportArchiveWorker(broker async.InternalBroker) (*inventoryUsecases.ReportArchiveWorker, error) {
	wire.Build(
		ItemServiceSet,
		provideTicker,
		provideBlobStore,
		provideReportArchiveConfig,
		inventoryUsecases.NewReportArchiveWorker,
	)
	return nil, nil
}
