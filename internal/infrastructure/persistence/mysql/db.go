package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bookhaven/bookhaven/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := gormlogger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 注意：生产环境应使用版本化的迁移脚本，不要依赖AutoMigrate
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&ItemTypeModel{},
		&SellItemModel{},
		&EventModel{},
		&EventRegistrationModel{},
		&SubscriberModel{},
	)
}

// SellItemModel GORM商品模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. AuthorID/ItemTypeID是弱引用,不建外键约束,
//    悬挂引用由查询侧补"Unknown"容错
// 3. title/isbn加索引支撑子串搜索与排序
type SellItemModel struct {
	ID            uint      `gorm:"primaryKey"`
	Title         string    `gorm:"index;size:200;not null;comment:标题"`
	AuthorID      uint      `gorm:"index;not null;comment:作者ID(弱引用)"`
	ItemTypeID    uint      `gorm:"index;not null;comment:类别ID(弱引用)"`
	PublishedDate time.Time `gorm:"comment:出版日期"`
	Description   string    `gorm:"type:text;comment:描述"`
	Price         int64     `gorm:"not null;comment:价格(分)"`
	ISBN          string    `gorm:"index;size:13;comment:ISBN号"`
	StockQuantity int       `gorm:"default:0;comment:库存数量"`
	CoverImage    string    `gorm:"type:text;comment:封面图(URL或data URI)"`
	CreatedAt     time.Time `gorm:"comment:创建时间"`
	UpdatedAt     time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (SellItemModel) TableName() string {
	return "sell_items"
}

// AuthorModel GORM作者模型
type AuthorModel struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"index;size:100;not null;comment:姓名"`
	BirthDate  time.Time `gorm:"comment:出生日期"`
	Biography  string    `gorm:"type:text;comment:简介"`
	CoverImage string    `gorm:"type:text;comment:头像(URL或data URI)"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// ItemTypeModel GORM商品类别模型
type ItemTypeModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"index;size:100;not null;comment:类别名"`
	Description string `gorm:"type:text;comment:描述"`
}

// TableName 指定表名
func (ItemTypeModel) TableName() string {
	return "item_types"
}

// EventModel GORM活动模型
// 设计说明:
// 1. CurrentRegistrations是冗余计数器,增减必须走条件原子UPDATE
// 2. IsActive=false表示已取消(软删除)
type EventModel struct {
	ID                   uint      `gorm:"primaryKey"`
	Name                 string    `gorm:"size:200;not null;comment:活动名"`
	Description          string    `gorm:"type:text;comment:描述"`
	EventType            string    `gorm:"index;size:100;comment:活动类型"`
	EventDate            time.Time `gorm:"index;comment:活动时间"`
	Location             string    `gorm:"size:200;comment:地点"`
	Capacity             int       `gorm:"not null;comment:容量"`
	CurrentRegistrations int       `gorm:"default:0;comment:当前报名数(冗余计数器)"`
	ImageUrl             string    `gorm:"type:text;comment:详情图"`
	CardImage            string    `gorm:"type:text;comment:卡片图(data URI)"`
	IsActive             bool      `gorm:"index;default:true;comment:是否活跃(false即已取消)"`
	CreatedDate          time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (EventModel) TableName() string {
	return "events"
}

// EventRegistrationModel GORM活动报名模型
// (event_id, email)复合唯一索引兜底"一个邮箱一个活动至多报名一次"
type EventRegistrationModel struct {
	ID             uint      `gorm:"primaryKey"`
	EventID        uint      `gorm:"uniqueIndex:idx_event_email;not null;comment:活动ID"`
	Email          string    `gorm:"uniqueIndex:idx_event_email;size:100;not null;comment:报名邮箱"`
	Name           string    `gorm:"size:100;not null;comment:报名人"`
	RegisteredDate time.Time `gorm:"index;comment:报名时间"`
	IsAttended     bool      `gorm:"default:false;comment:是否到场"`
}

// TableName 指定表名
func (EventRegistrationModel) TableName() string {
	return "event_registrations"
}

// SubscriberModel GORM订阅者模型
// email唯一索引兜底重复订阅;退订翻转is_active,记录保留
type SubscriberModel struct {
	ID             uint      `gorm:"primaryKey"`
	Email          string    `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Name           string    `gorm:"size:100;comment:姓名"`
	SubscribedDate time.Time `gorm:"comment:订阅时间"`
	IsActive       bool      `gorm:"index;default:true;comment:是否活跃"`
}

// TableName 指定表名
func (SubscriberModel) TableName() string {
	return "subscribers"
}
