package domain

// Параметры пагинации списка бронирований
const (
	DefaultPage     = 0
	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100

	// BookingsSort сортировка списка бронирований во внешнем API
	BookingsSort = "createdAt,desc"
)

// MaxStatusChecksPerQuery максимальное количество записей status check в одном ответе
const MaxStatusChecksPerQuery = 1000

