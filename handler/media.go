package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"farm2art/constants"
	"farm2art/database"
	"farm2art/helper"
	"farm2art/model"
	"farm2art/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GenerateUploadSignature ký tham số upload để client đẩy ảnh thẳng lên
// Cloudinary, server không trung chuyển file
func GenerateUploadSignature(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Params không hợp lệ", err)
	}

	timestamp := time.Now().Unix()
	timestampStr := fmt.Sprintf("%d", timestamp)

	// Chỉ ký các tham số Cloudinary chấp nhận, giá trị thô không escape
	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = timestampStr

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}

// DeleteProductImage xóa ảnh khỏi sản phẩm của chính người bán, đồng thời
// dọn file trên Cloudinary nếu còn public_id
func DeleteProductImage(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	imageId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var image model.ProductImage
	if err := database.DB.First(&image, "id = ?", imageId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var product model.Product
	if err := database.DB.First(&product, "id = ?", image.ProductID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if product.SellerID != customer.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Sản phẩm không thuộc về bạn", errors.New("not owner"))
	}

	if image.PublicID != "" {
		cld := helper.InitCloudinary()
		cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: image.PublicID})
	}

	if err := database.DB.Delete(&image).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
