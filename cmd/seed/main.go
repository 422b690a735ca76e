package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"seminary/pkg/client"
	"seminary/pkg/config"
	"seminary/pkg/logger"
)

type sampleLecture struct {
	form     client.LectureForm
	material string
}

var sampleLectures = []sampleLecture{
	{client.LectureForm{Category: "신학과정", Series: "조직신학 개론", Number: "1", Instructor: "김요한", Description: "신론과 계시론", Duration: "00:52:10", YoutubeEmbedLink: "https://youtu.be/dQw4w9WgXcQ"}, "조직신학_1강.pdf"},
	{client.LectureForm{Category: "신학과정", Series: "조직신학 개론", Number: "2", Instructor: "김요한", Description: "인간론", Duration: "00:48:30"}, "조직신학_2강.pdf"},
	{client.LectureForm{Category: "성서/성서배경", Series: "요한복음 강해", Number: "1", Instructor: "박마리아", Description: "말씀이 육신이 되어", Duration: "01:02:00"}, "요한복음_1장.pdf"},
	{client.LectureForm{Category: "성서/성서배경", Series: "구약 배경사", Number: "1", Instructor: "이다윗", Description: "족장 시대", DriveEmbedLink: "https://drive.google.com/open?id=1AbCdEfGhIjK"}, ""},
	{client.LectureForm{Category: "전도인과정", Series: "전도의 기초", Number: "1", Instructor: "최바울", Description: "복음 제시 방법", Duration: "00:35:00"}, "전도의기초_워크북.docx"},
	{client.LectureForm{Category: "정규과정", Series: "교회사", Number: "1", Instructor: "정베드로", Description: "초대교회", Duration: "00:55:45"}, ""},
	{client.LectureForm{Category: "정규과정", Series: "교회사", Number: "2", Instructor: "정베드로", Description: "중세교회", Duration: "00:57:20"}, "교회사_2강.pptx"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	var (
		baseURL  = flag.String("url", "http://localhost:"+cfg.ServerPort+"/api", "API base URL")
		username = flag.String("username", cfg.AdminUsername, "admin username")
		password = flag.String("password", cfg.AdminPassword, "admin password")
		force    = flag.Bool("force", false, "seed even if lectures already exist")
	)
	flag.Parse()

	log := logger.New()
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	api := client.New(*baseURL, client.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}))
	if err := seed(ctx, api, *username, *password, *force, log); err != nil {
		log.Error("Failed to seed lectures: %v", err)
		os.Exit(1)
	}
	log.Info("Lectures seeded successfully!")
}

func seed(ctx context.Context, api *client.Client, username, password string, force bool, log *logger.Logger) error {
	auth, err := api.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("failed to log in as %s: %w", username, err)
	}
	if !auth.User.IsAdmin() {
		return fmt.Errorf("user %s is not an admin", username)
	}
	defer api.Logout()

	existing, err := api.ListLectures(ctx, client.ListOptions{Category: client.CategoryAll, PageSize: 1})
	if err != nil {
		return fmt.Errorf("failed to list lectures: %w", err)
	}
	if existing.Pagination.TotalItems > 0 && !force {
		log.Info("%d lectures already exist, skipping (use -force to seed anyway)", existing.Pagination.TotalItems)
		return nil
	}

	for _, sample := range sampleLectures {
		var files []client.File
		if sample.material != "" {
			files = append(files, client.File{
				Name:    sample.material,
				Content: strings.NewReader(fmt.Sprintf("%s %s강 자료\n", sample.form.Series, sample.form.Number)),
			})
		}

		lecture, err := api.CreateLecture(ctx, sample.form, files...)
		if err != nil {
			log.Error("Failed to create %s %s: %v", sample.form.Series, sample.form.Number, err)
			continue
		}
		log.Info("Created lecture %s (%s %s강, %d materials)", lecture.ID, lecture.Series, lecture.Number, len(lecture.Materials))
	}
	return nil
}
