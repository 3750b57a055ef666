// Package common cung cấp taxonomy lỗi dùng chung cho các tầng ngoài engine.
// Engine phân tích không trả lỗi cho vấn đề chất lượng dữ liệu (bỏ qua hoặc
// rút gọn output); chỉ các tầng handler/service/persistence dùng package này.
package common

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Các sentinel errors dùng với errors.Is/errors.As
var (
	ErrNotFound      = errors.New("không tìm thấy tài nguyên")
	ErrRequiredField = errors.New("thiếu trường bắt buộc")
	ErrInvalidInput  = errors.New("dữ liệu đầu vào không hợp lệ")
	ErrDuplicate     = errors.New("dữ liệu bị trùng lặp")
	ErrUnavailable   = errors.New("dịch vụ không khả dụng")
)

// Error là custom error chứa mã lỗi, message và HTTP status code.
type Error struct {
	Code       ErrorCode   // Mã lỗi chi tiết
	Message    string      // Message hiển thị cho client
	StatusCode int         // HTTP status code
	Details    interface{} // Chi tiết bổ sung (optional)
}

// Error implement error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code.Code, e.Message)
}

// NewError tạo một *Error mới.
func NewError(code ErrorCode, message string, statusCode int, details interface{}) *Error {
	if message == "" {
		message = code.Description
	}
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// ConvertMongoError chuyển lỗi từ mongo driver sang sentinel/custom error thống nhất.
// ErrNoDocuments → ErrNotFound; duplicate key → ErrDuplicate; còn lại giữ nguyên
// bọc trong *Error với mã DB_001.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return NewError(ErrCodeDatabase, err.Error(), StatusInternalServerError, nil)
}
