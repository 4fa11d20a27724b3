package ports

const EventCatalogChanged = "catalog_changed"

type ChangeNotifier interface {
	Notify(event string)
}
