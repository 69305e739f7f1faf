package domain

// AttractionStream - живой поток полных снимков списка достопримечательностей.
// Производитель отправляет свежий снимок в C при каждом изменении данных.
// Ошибка завершает поток: после отправки в Errors оба канала закрываются,
// перезапуск - явное действие потребителя.
type AttractionStream struct {
	// C получает полный снимок при каждом изменении подлежащих данных.
	C <-chan []Attraction

	// Errors получает не более одной ошибки, завершающей поток.
	Errors <-chan error

	stop func()
}

// NewAttractionStream собирает поток из каналов производителя.
// stop освобождает ресурсы производителя, может быть nil.
func NewAttractionStream(snapshots <-chan []Attraction, errs <-chan error, stop func()) *AttractionStream {
	return &AttractionStream{
		C:      snapshots,
		Errors: errs,
		stop:   stop,
	}
}

// Close освобождает подписку. Безопасен при повторном вызове,
// если stop производителя идемпотентен.
func (s *AttractionStream) Close() {
	if s.stop != nil {
		s.stop()
	}
}
