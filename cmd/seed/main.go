package main

import (
	"context"
	"flag"
	"os"

	"notes-app-be/internal/config"
	"notes-app-be/internal/dto"
	"notes-app-be/internal/model"
	"notes-app-be/internal/pkg/logger"
	"notes-app-be/internal/repository/unitofwork"
	"notes-app-be/internal/service"
	"notes-app-be/pkg/database"

	"github.com/fatih/color"
)

var samples = []dto.CreateNoteRequest{
	{Title: "Welcome", Content: "This is your first note. Edit or delete it any time.", Tags: []string{"getting-started"}},
	{Title: "Groceries", Content: "Milk, eggs, coffee beans, spinach.", Tags: []string{"home", "errands"}},
	{Title: "Sprint planning", Content: "Review backlog, agree on goals, size the top stories.", Tags: []string{"work"}},
	{Title: "Book list", Content: "The Pragmatic Programmer\nDesigning Data-Intensive Applications", Tags: []string{"reading"}},
	{Title: "Standup notes", Content: "Blocked on API review. Pairing on the migration after lunch.", Tags: []string{"work", "daily"}},
}

func main() {
	force := flag.Bool("force", false, "seed even when notes already exist")
	flag.Parse()

	cfg := config.Load()
	db, err := database.NewGormDB(database.GormConfig{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.Connection,
	})
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := model.Migrate(db); err != nil {
		color.Red("Migration failed: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)

	existing, err := uowFactory.NewUnitOfWork(ctx).NoteRepository().Count(ctx)
	if err != nil {
		color.Red("Failed to count notes: %v", err)
		os.Exit(1)
	}
	if existing > 0 && !*force {
		color.Yellow("%d note(s) already present, skipping (use -force to seed anyway)", existing)
		return
	}

	noteService := service.NewNoteService(uowFactory, nil, logger.NewNopLogger())

	color.Cyan("Seeding %d notes...", len(samples))
	for i := range samples {
		res, err := noteService.Create(ctx, &samples[i])
		if err != nil {
			color.Red("  %s: %v", samples[i].Title, err)
			continue
		}
		color.Green("  %s (%s)", res.Title, res.Id)
	}
}
