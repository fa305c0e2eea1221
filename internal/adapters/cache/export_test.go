package cache

// WaitIdle blocks until all scheduled background refetches have settled.
func (s *Store) WaitIdle() {
	s.wg.Wait()
}
