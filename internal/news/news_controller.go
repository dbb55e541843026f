package news

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/pkg/utils"
	"gorm.io/gorm"
)

type NewsController struct {
	repo   NewsRepository
	config *config.Config
}

func NewNewsController(repo NewsRepository, cfg *config.Config) *NewsController {
	return &NewsController{repo: repo, config: cfg}
}

func teamIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid team id")
		return 0, false
	}
	return uint(id), true
}

// @Summary      Published news
// @Tags         News
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Success      200  {array}  News
// @Router       /teams/{team_id}/news [get]
func (nc *NewsController) GetPublishedNews(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	items, err := nc.repo.ListPublished(teamID)
	if err != nil {
		log.Printf("news: list for team %d failed: %v", teamID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Get news item
// @Tags         News
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        news_id  path  int  true  "News ID"
// @Success      200  {object}  News
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/news/{news_id} [get]
func (nc *NewsController) GetNewsByID(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	newsID, err := strconv.ParseUint(c.Param("news_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid news id")
		return
	}
	n, err := nc.repo.GetByID(uint(newsID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "News")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}
	// Drafts stay invisible on the public route.
	if n.TeamID != teamID || !n.Published {
		utils.NotFoundJSON(c, "News")
		return
	}
	c.JSON(http.StatusOK, n)
}

// @Summary      List all news including drafts
// @Tags         News
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Success      200  {array}  News
// @Router       /teams/{team_id}/news-admin [get]
func (nc *NewsController) GetAllNews(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	items, err := nc.repo.ListAll(teamID)
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Create news
// @Tags         News
// @Accept       json
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        news  body  CreateNewsRequest  true  "News details"
// @Success      201  {object}  News
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/news [post]
func (nc *NewsController) CreateNews(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	var req CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	n := &News{
		TeamID:     teamID,
		Title:      req.Title,
		Body:       req.Body,
		CoverImage: req.CoverImage,
		Published:  req.Published,
	}
	if n.Published {
		now := time.Now()
		n.PublishedAt = &now
	}

	if err := nc.repo.Create(n); err != nil {
		log.Printf("news: create failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

// @Summary      Update news
// @Tags         News
// @Accept       json
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        news_id  path  int  true  "News ID"
// @Param        news  body  UpdateNewsRequest  true  "Fields to update"
// @Success      200  {object}  News
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/news/{news_id} [put]
func (nc *NewsController) UpdateNews(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	newsID, err := strconv.ParseUint(c.Param("news_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid news id")
		return
	}

	n, err := nc.repo.GetByID(uint(newsID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "News")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}
	if n.TeamID != teamID {
		utils.NotFoundJSON(c, "News")
		return
	}

	var req UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	if req.Title != nil {
		n.Title = *req.Title
	}
	if req.Body != nil {
		n.Body = *req.Body
	}
	if req.CoverImage != nil {
		n.CoverImage = *req.CoverImage
	}
	if req.Published != nil {
		if *req.Published && !n.Published {
			now := time.Now()
			n.PublishedAt = &now
		}
		n.Published = *req.Published
	}

	if err := nc.repo.Update(n); err != nil {
		log.Printf("news: update %d failed: %v", newsID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// @Summary      Delete news
// @Tags         News
// @Param        team_id  path  int  true  "Team ID"
// @Param        news_id  path  int  true  "News ID"
// @Success      200  {object}  utils.SuccessResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/news/{news_id} [delete]
func (nc *NewsController) DeleteNews(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	newsID, err := strconv.ParseUint(c.Param("news_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid news id")
		return
	}

	n, err := nc.repo.GetByID(uint(newsID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "News")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}
	if n.TeamID != teamID {
		utils.NotFoundJSON(c, "News")
		return
	}

	if err := nc.repo.Delete(uint(newsID)); err != nil {
		log.Printf("news: delete %d failed: %v", newsID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	utils.SuccessJSON(c, http.StatusOK, "News deleted successfully", nil)
}
