package controllers

import (
	"eduvest/database"
	"eduvest/middleware"
	"eduvest/models"
	"eduvest/utils"
	courseValidator "eduvest/validators/course"
	"encoding/json"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdminCreateCourse creates a new course. Videos come either inline or,
// when the payload only carries a playlist id, from the YouTube API.
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	videos := reqData.Videos
	if len(videos) == 0 && strings.TrimSpace(reqData.PlaylistID) != "" {
		imported, err := utils.FetchPlaylistVideos(reqData.PlaylistID)
		if err != nil {
			log.Printf("Error importing playlist %s: %v", reqData.PlaylistID, err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to import playlist videos!", nil)
		}
		for _, item := range imported {
			videos = append(videos, courseValidator.CourseVideoRequest{
				Title:   item.Title,
				VideoID: item.YoutubeID,
				Order:   item.Position,
			})
		}
		if len(videos) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Playlist has no videos!", nil)
		}
	}

	tagsJSON, err := json.Marshal(reqData.Tags)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tags!", nil)
	}

	course := models.Course{
		Title:         reqData.Title,
		Description:   reqData.Description,
		Instructor:    reqData.Instructor,
		PlaylistID:    reqData.PlaylistID,
		Difficulty:    reqData.Difficulty,
		Reward:        reqData.Reward,
		TimeLimitDays: reqData.TimeLimit,
		Category:      reqData.Category,
		Tags:          datatypes.JSON(tagsJSON),
		IsActive:      true,
	}

	for i, video := range videos {
		videoKey := strings.TrimSpace(video.ID)
		if videoKey == "" {
			videoKey = uuid.NewString()
		}
		order := video.Order
		if order == 0 {
			order = i
		}
		course.Videos = append(course.Videos, models.CourseVideo{
			VideoKey:        videoKey,
			Title:           video.Title,
			YoutubeID:       video.VideoID,
			DurationSeconds: video.Duration,
			OrderIndex:      order,
		})
	}

	// Save course with videos in one transaction
	tx := database.Database.Db.Begin()
	if err := tx.Create(&course).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse patches the mutable fields of a course.
// Last writer wins, there is no version check.
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Instructor != "" {
		course.Instructor = reqData.Instructor
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.Difficulty != "" {
		course.Difficulty = reqData.Difficulty
	}
	if reqData.Reward != nil {
		course.Reward = *reqData.Reward
	}
	if reqData.TimeLimit != nil {
		course.TimeLimitDays = *reqData.TimeLimit
	}
	if reqData.IsActive != nil {
		course.IsActive = *reqData.IsActive
	}
	if reqData.Tags != nil {
		tagsJSON, err := json.Marshal(reqData.Tags)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tags!", nil)
		}
		course.Tags = datatypes.JSON(tagsJSON)
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}
