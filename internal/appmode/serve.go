package appmode

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/UnendingLoop/MiniGrep/internal/transport"
)

// RunServe serves the search engine over HTTP until ctx is cancelled.
func RunServe(ctx context.Context, stop context.CancelFunc, ai *model.AppInit) error {
	// получить экземпляр сервера
	srv := transport.NewServer(ai.Address, processor.Processor{})
	errCh := make(chan error, 1)

	// запуск сервера
	go func() {
		log.Printf("Server running on %s", srv.Addr)
		err := srv.ListenAndServe()
		if err != nil {
			switch {
			case errors.Is(err, http.ErrServerClosed):
				log.Println("Server gracefully stopping...")
			default:
				log.Printf("Server stopped: %v", err)
				errCh <- err
				stop()
			}
		}
	}()

	<-ctx.Done()

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server %q correctly: %q", ai.Address, err.Error())
		return err
	}
	log.Printf("Server %q is closed.", ai.Address)

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}
