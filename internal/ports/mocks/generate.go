//go:generate mockgen -source=../catalog_api.go          -destination=./mock_catalog_api.go          -package=mocks
//go:generate mockgen -source=../catalog_snapshot.go     -destination=./mock_catalog_snapshot.go     -package=mocks
//go:generate mockgen -source=../catalog_repository.go   -destination=./mock_catalog_repository.go   -package=mocks
//go:generate mockgen -source=../validator.go            -destination=./mock_validator.go            -package=mocks
//go:generate mockgen -source=../logger.go               -destination=./mock_logger.go               -package=mocks
//go:generate mockgen -source=../message_consumer.go     -destination=./mock_message_consumer.go     -package=mocks
//go:generate mockgen -source=../catalog_read_service.go -destination=./mock_catalog_read_service.go -package=mocks
//go:generate mockgen -source=../catalog_data_service.go -destination=./mock_catalog_data_service.go -package=mocks

package mocks
