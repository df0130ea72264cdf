package data

type IDbProvider interface {
	Connect(connectionString string)
	Disconnect()
	GetClient() any
}

type IMigratable interface {
	Migrate(connectionString string)
}

type PagingModel[T any] struct {
	TotalPage   int `json:"totalPage"`
	CurrentPage int `json:"currentPage"`
	Take        int `json:"take"`
	TotalCount  int `json:"totalCount"`
	Data        []T `json:"data"`
}
