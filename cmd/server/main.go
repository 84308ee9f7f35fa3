// @title Data Integrity Dashboard API
// @version 1.0
// @description API дашборда качества данных: загрузка CSV/XLSX/PDF файлов и расчет метрик целостности (полнота, согласованность, интегральная оценка, валидные записи).

// @contact.name API Support
// @contact.email support@example.com

// @license.name Internal Use Only

// @host localhost:8050
// @BasePath /
// @schemes http

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dashboard/database"
	"dashboard/internal/config"
	"dashboard/server"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════")
	log.Println("🚀 Запуск Data Integrity Dashboard...")

	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Открываем базу истории отчетов
	reportsDB, err := database.NewReportsDB(cfg.ReportsDBPath)
	if err != nil {
		log.Fatalf("Ошибка открытия базы отчетов: %v", err)
	}
	defer reportsDB.Close()
	log.Printf("Используется база истории отчетов: %s", cfg.ReportsDBPath)

	srv := server.NewServer(cfg, reportsDB)

	// Запускаем сервер в отдельной горутине
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: Ошибка запуска сервера: %v", err)
		}
	}()

	// Обработка сигналов для graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Printf("Получен сигнал %v, останавливаем сервер...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠ Ошибка при остановке сервера: %v", err)
	}

	log.Println("Сервер остановлен")
}
