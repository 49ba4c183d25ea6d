package statuscheck

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("statuscheck.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("statuscheck.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("statuscheck.repository: failed to scan row")
)
