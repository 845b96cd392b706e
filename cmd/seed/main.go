// Seeder for the global exercise library, plus optional demo data for
// local development (-demo -user <openId>).
package main

import (
	"flag"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jonathanRossato/treino-app/config"
	"github.com/jonathanRossato/treino-app/models"
	"github.com/jonathanRossato/treino-app/services"
)

func strPtr(s string) *string { return &s }

var libraryExercises = []models.LibraryExercise{
	// Peito
	{Name: "Supino Reto com Barra", MuscleGroup: "Peito", Equipment: strPtr("Barra"), Difficulty: models.DifficultyIntermediario, MediaURL: "https://i.imgur.com/5FZW8Qj.gif", MediaType: models.MediaTypeGif, Description: strPtr("Deite no banco reto, pegue a barra com pegada média, desça até o peito e empurre para cima."), IsGlobal: true},
	{Name: "Supino Inclinado com Halteres", MuscleGroup: "Peito", Equipment: strPtr("Halteres"), Difficulty: models.DifficultyIntermediario, MediaURL: "https://i.imgur.com/XqKqJ5L.gif", MediaType: models.MediaTypeGif, Description: strPtr("No banco inclinado (30-45°), empurre os halteres para cima mantendo controle."), IsGlobal: true},
	{Name: "Crucifixo com Halteres", MuscleGroup: "Peito", Equipment: strPtr("Halteres"), Difficulty: models.DifficultyIntermediario, MediaURL: "https://i.imgur.com/8vqKjZL.gif", MediaType: models.MediaTypeGif, Description: strPtr("Abra os braços lateralmente com leve flexão nos cotovelos, depois junte na frente."), IsGlobal: true},
	{Name: "Flexão de Braço", MuscleGroup: "Peito", Equipment: strPtr("Peso Corporal"), Difficulty: models.DifficultyIniciante, MediaURL: "https://i.imgur.com/yKzJ8Qj.gif", MediaType: models.MediaTypeGif, Description: strPtr("Posição de prancha, desça o corpo até quase tocar o chão e empurre para cima."), IsGlobal: true},
	// Costas
	{Name: "Barra Fixa", MuscleGroup: "Costas", Equipment: strPtr("Barra Fixa"), Difficulty: models.DifficultyIntermediario, MediaURL: "https://i.imgur.com/3vqKjZL.gif", MediaType: models.MediaTypeGif, Description: strPtr("Segure a barra com pegada pronada, puxe o corpo até o queixo passar a barra."), IsGlobal: true},
	{Name: "Remada Curvada com Barra", MuscleGroup: "Costas", Equipment: strPtr("Barra"), Difficulty: models.DifficultyIntermediario, MediaURL: "https://i.imgur.com/7vqKjZL.gif", MediaType: models.MediaTypeGif, Description: strPtr("Incline o tronco, puxe a barra até o abdômen mantendo as costas retas."), IsGlobal: true},
	{Name: "Pulldown", MuscleGroup: "Costas", Equipment: strPtr("Máquina"), Difficulty: models.DifficultyIniciante, MediaURL: "https://i.imgur.com/9vqKjZL.gif", MediaType: models.MediaTypeGif, Description: strPtr("Puxe a barra até a altura do peito, controlando a subida."), IsGlobal: true},
	// Pernas
	{Name: "Agachamento Livre", MuscleGroup: "Pernas", Equipment: strPtr("Barra"), Difficulty: models.DifficultyIntermediario, MediaURL: "https://i.imgur.com/aqKjZ5L.gif", MediaType: models.MediaTypeGif, Description: strPtr("Barra nas costas, desça flexionando joelhos e quadril até as coxas ficarem paralelas ao chão."), IsGlobal: true},
	{Name: "Leg Press 45°", MuscleGroup: "Pernas", Equipment: strPtr("Máquina"), Difficulty: models.DifficultyIniciante, MediaURL: "https://i.imgur.com/bqKjZ5L.gif", MediaType: models.MediaTypeGif, Description: strPtr("Empurre a plataforma sem travar completamente os joelhos."), IsGlobal: true},
	{Name: "Stiff", MuscleGroup: "Pernas", Equipment: strPtr("Barra"), Difficulty: models.DifficultyIntermediario, MediaURL: "https://i.imgur.com/cqKjZ5L.gif", MediaType: models.MediaTypeGif, Description: strPtr("Desça a barra mantendo as pernas semiestendidas, sentindo alongar o posterior."), IsGlobal: true},
	// Ombros
	{Name: "Desenvolvimento com Barra", MuscleGroup: "Ombros", Equipment: strPtr("Barra"), Difficulty: models.DifficultyIntermediario, MediaURL: "https://i.imgur.com/dqKjZ5L.gif", MediaType: models.MediaTypeGif, Description: strPtr("Empurre a barra acima da cabeça partindo da altura dos ombros."), IsGlobal: true},
	{Name: "Elevação Lateral com Halteres", MuscleGroup: "Ombros", Equipment: strPtr("Halteres"), Difficulty: models.DifficultyIniciante, MediaURL: "https://i.imgur.com/eqKjZ5L.gif", MediaType: models.MediaTypeGif, Description: strPtr("Eleve os halteres lateralmente até a altura dos ombros."), IsGlobal: true},
	// Bíceps
	{Name: "Rosca Direta com Barra", MuscleGroup: "Bíceps", Equipment: strPtr("Barra"), Difficulty: models.DifficultyIniciante, MediaURL: "https://i.imgur.com/fqKjZ5L.gif", MediaType: models.MediaTypeGif, Description: strPtr("Flexione os cotovelos trazendo a barra até os ombros, sem balançar o tronco."), IsGlobal: true},
	{Name: "Rosca Martelo", MuscleGroup: "Bíceps", Equipment: strPtr("Halteres"), Difficulty: models.DifficultyIniciante, MediaURL: "https://i.imgur.com/gqKjZ5L.gif", MediaType: models.MediaTypeGif, Description: strPtr("Pegada neutra, flexione os cotovelos mantendo os punhos alinhados."), IsGlobal: true},
	// Tríceps
	{Name: "Tríceps Pulley", MuscleGroup: "Tríceps", Equipment: strPtr("Máquina"), Difficulty: models.DifficultyIniciante, MediaURL: "https://i.imgur.com/hqKjZ5L.gif", MediaType: models.MediaTypeGif, Description: strPtr("Empurre a barra para baixo estendendo completamente os cotovelos."), IsGlobal: true},
	{Name: "Tríceps Testa com Barra", MuscleGroup: "Tríceps", Equipment: strPtr("Barra"), Difficulty: models.DifficultyIntermediario, MediaURL: "https://i.imgur.com/iqKjZ5L.gif", MediaType: models.MediaTypeGif, Description: strPtr("Deitado, desça a barra até a testa flexionando apenas os cotovelos."), IsGlobal: true},
	// Abdômen
	{Name: "Abdominal Reto", MuscleGroup: "Abdômen", Equipment: strPtr("Peso Corporal"), Difficulty: models.DifficultyIniciante, MediaURL: "https://i.imgur.com/jqKjZ5L.gif", MediaType: models.MediaTypeGif, Description: strPtr("Deitado, eleve o tronco contraindo o abdômen."), IsGlobal: true},
	{Name: "Prancha Isométrica", MuscleGroup: "Abdômen", Equipment: strPtr("Peso Corporal"), Difficulty: models.DifficultyIniciante, MediaURL: "https://i.imgur.com/kqKjZ5L.gif", MediaType: models.MediaTypeGif, Description: strPtr("Sustente o corpo reto apoiado nos antebraços e pontas dos pés."), IsGlobal: true},
}

func seedLibrary(db *gorm.DB) {
	for _, ex := range libraryExercises {
		var count int64
		db.Model(&models.LibraryExercise{}).
			Where("name = ? AND is_global = ?", ex.Name, true).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&ex).Error; err != nil {
			log.WithError(err).WithField("exercise", ex.Name).Fatal("seeding library exercise failed")
		}
	}
	log.WithField("count", len(libraryExercises)).Info("exercise library seeded")
}

// seedDemo creates a few weeks of plausible workouts for one user so the
// dashboards have something to show in development.
func seedDemo(db *gorm.DB, openID string) {
	users := services.NewUserService(db)
	user, err := users.Upsert(services.UpsertUserInput{
		OpenID: openID,
		Name:   strPtr(gofakeit.Name()),
		Email:  strPtr(gofakeit.Email()),
	})
	if err != nil {
		log.WithError(err).Fatal("creating demo user failed")
	}

	workouts := services.NewWorkoutService(db)
	names := []string{"Treino A - Peito e Tríceps", "Treino B - Costas e Bíceps", "Treino C - Pernas"}
	for i := 0; i < 12; i++ {
		var exercises []services.ExerciseInput
		for j := 0; j < gofakeit.Number(3, 5); j++ {
			lib := libraryExercises[gofakeit.Number(0, len(libraryExercises)-1)]
			exercises = append(exercises, services.ExerciseInput{
				Name:   lib.Name,
				Sets:   gofakeit.Number(3, 5),
				Reps:   gofakeit.Number(8, 12),
				Weight: gofakeit.Number(20, 100),
			})
		}
		input := services.CreateWorkoutInput{
			Name:      names[i%len(names)],
			Date:      time.Now().AddDate(0, 0, -i*3),
			Exercises: exercises,
		}
		if _, err := workouts.Create(user.ID, input); err != nil {
			log.WithError(err).Fatal("creating demo workout failed")
		}
	}
	log.WithField("user", openID).Info("demo data seeded")
}

func main() {
	demo := flag.Bool("demo", false, "also seed demo workouts")
	demoUser := flag.String("user", "demo-user", "openId of the demo user")
	flag.Parse()

	db := config.InitDB()
	seedLibrary(db)
	if *demo {
		seedDemo(db, *demoUser)
	}
}
