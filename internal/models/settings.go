package models

type SecuritySettings struct {
	FieldAuthEnabled   bool   `json:"field_auth_enabled"`
	DefaultHandlerRole string `json:"default_handler_role"`
}

type UnitOfWorkSettings struct {
	AtomicWritesEnabled bool `json:"atomic_writes_enabled"`
	TimeoutMS           int  `json:"timeout_ms"`
}

type Settings struct {
	Security   SecuritySettings   `json:"security"`
	UnitOfWork UnitOfWorkSettings `json:"uow"`
}

type ReportOption struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Endpoint    string `json:"endpoint"`
}
