package tracker

//go:generate mockgen -destination=internal/mocks/logger_mock.go -package=mocks -mock_names Logger=LoggerMock github.com/sirkon/linecov/internal/logging Logger
