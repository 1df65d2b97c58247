package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/jcalhoun/degreeplanner/internal/app/models"
	appRepos "github.com/jcalhoun/degreeplanner/internal/app/repositories"
)

// SampleCourses returns the built-in sample catalog. It is seeded into an
// empty database and also served verbatim on the sample-data endpoint so a
// fresh install has something to plan against before any documents are
// ingested.
func SampleCourses() []appModels.Course {
	return []appModels.Course{
		{
			Code:            "BIBL101",
			Name:            "Introduction to Biblical Studies",
			Credits:         3,
			Description:     "Survey of the Hebrew Bible and New Testament",
			SemesterOffered: []string{"Fall", "Spring"},
			School:          appModels.SchoolUTS,
		},
		{
			Code:            "THEO201",
			Name:            "Systematic Theology",
			Credits:         3,
			Description:     "Doctrine of God, Christology, and theological method",
			Prerequisites:   []string{"BIBL101"},
			SemesterOffered: []string{"Spring"},
			School:          appModels.SchoolUTS,
		},
		{
			Code:            "SW501",
			Name:            "Social Work Practice I",
			Credits:         3,
			Description:     "Foundations of generalist social work practice",
			SemesterOffered: []string{"Fall"},
			School:          appModels.SchoolColumbia,
		},
	}
}

// SampleRequirements returns the built-in sample requirement tree matching
// SampleCourses.
func SampleRequirements() []appModels.Requirement {
	return []appModels.Requirement{
		{
			Name:            "UTS M.Div Core Requirements",
			Description:     "Core curriculum for the Master of Divinity",
			CreditsRequired: 60,
			Courses:         []string{"BIBL101", "THEO201"},
		},
		{
			Name:            "Columbia MSSW Requirements",
			Description:     "Core curriculum for the Master of Science in Social Work",
			CreditsRequired: 60,
			Courses:         []string{"SW501"},
		},
	}
}

// CreateDefaultData seeds the sample catalog and requirements into an empty
// database. A database that already holds courses or requirements is left
// untouched so parsed data is never clobbered on restart.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)
	requirementRepo := appRepos.NewRequirementRepository(dbPool)

	var finalErr error

	courseCount, err := courseRepo.CountCourses(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting courses for seed check")
		return err
	}
	if courseCount == 0 {
		lgr.Info().Msg("Seeding sample courses...")
		courses := SampleCourses()
		for i := range courses {
			if err := courseRepo.UpsertCourse(ctx, &courses[i]); err != nil {
				lgr.Error().Err(err).Str("code", courses[i].Code).Msg("Error seeding sample course")
				finalErr = errors.Join(finalErr, err)
			}
		}
	} else {
		lgr.Info().Int64("count", courseCount).Msg("Courses already present, skipping seed")
	}

	requirementCount, err := requirementRepo.CountRequirements(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting requirements for seed check")
		return errors.Join(finalErr, err)
	}
	if requirementCount == 0 {
		lgr.Info().Msg("Seeding sample requirements...")
		if err := requirementRepo.ReplaceAll(ctx, SampleRequirements()); err != nil {
			lgr.Error().Err(err).Msg("Error seeding sample requirements")
			finalErr = errors.Join(finalErr, err)
		}
	} else {
		lgr.Info().Int64("count", requirementCount).Msg("Requirements already present, skipping seed")
	}

	return finalErr
}
