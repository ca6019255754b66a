package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"archetype-quiz/internal/config"
	"archetype-quiz/internal/notestore"
	"archetype-quiz/internal/service"
)

// CLI mínima para editar notas por sección contra el engine de sync:
// persiste local-first (redis si está configurado, memoria si no) y
// sincroniza con debounce al store remoto.
func main() {
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	cache := service.NewMemoryNoteCache()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := client.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using memory cache", zap.Error(err))
		} else {
			cache = service.NewRedisNoteCache(client)
		}
		cancel()
	}

	var remote notestore.RemoteStore
	authenticated := false
	if cfg.NoteStoreBaseURL != "" && cfg.NoteStoreToken != "" {
		remote = notestore.NewHTTPClient(cfg.NoteStoreBaseURL, cfg.NoteStoreToken, logger.Sugar())
		authenticated = true
	} else {
		fmt.Println("Sin NOTE_STORE_BASE_URL/NOTE_STORE_TOKEN: modo local-only.")
	}

	engine := service.NewNoteSyncEngine(
		cache,
		remote,
		service.NewTimerScheduler(),
		time.Duration(cfg.NoteDebounceMS)*time.Millisecond,
		cfg.NotesNamespace,
		authenticated,
		logger,
	)

	fmt.Println("Comandos: edit <section> <texto> | show <section> | list | flush | quit")
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "edit":
			if len(fields) < 3 {
				fmt.Println("uso: edit <section> <texto>")
				continue
			}
			engine.Edit(fields[1], strings.Join(fields[2:], " "))
		case "show":
			if len(fields) < 2 {
				fmt.Println("uso: show <section>")
				continue
			}
			entry, status, ok := engine.Get(fields[1])
			if !ok {
				fmt.Println("(sin nota)")
				continue
			}
			fmt.Printf("[%s] %s (remote_id=%q dirty=%v)\n", status, entry.Content, entry.RemoteID, entry.Dirty)
		case "list":
			for sectionID, entry := range engine.Snapshot() {
				fmt.Printf("%s: %s\n", sectionID, entry.Content)
			}
		case "flush":
			engine.FlushAll()
		case "quit", "exit":
			engine.FlushAll()
			return
		default:
			fmt.Println("comando desconocido")
		}
	}
}
