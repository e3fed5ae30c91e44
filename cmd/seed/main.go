package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sysu-ecnc-dev/job-tracker/backend/internal/config"
	"github.com/sysu-ecnc-dev/job-tracker/backend/internal/repository"
	"github.com/sysu-ecnc-dev/job-tracker/backend/internal/seed"
	"github.com/sysu-ecnc-dev/job-tracker/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var userEmail string
	var csvPath string

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机用户, 2: 插入随机求职申请, 3: 从 CSV 导入求职申请)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.StringVar(&userEmail, "user-email", "", "记录所属用户的邮箱")
	flag.StringVar(&csvPath, "file", "", "要导入的 CSV 文件路径")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 1:
		insertRandomUsers(repo, cfg, n)
	case 2:
		insertRandomJobApplications(repo, userEmail, n)
	case 3:
		if csvPath == "" {
			logger.Error("必须通过 -file 指定 CSV 文件路径")
			return
		}
		seed.ImportJobApplicationsFromCSV(repo, csvPath, userEmail)
	default:
		logger.Error("无效的操作", "op", op)
	}
}

func insertRandomUsers(repo *repository.Repository, cfg *config.Config, n int) {
	inserted := 0
	for i := 0; i < n; i++ {
		// 没有配置统一密码时为每个用户单独生成随机密码，并通过日志告知
		password := cfg.Seed.User.Password
		if password == "" {
			password = utils.GenerateRandomPassword(cfg.Seed.User.PasswordLength)
		}

		user, err := utils.GenerateRandomUser(password, cfg.Email.UserDomain)
		if err != nil {
			slog.Error("生成随机用户失败", "error", err)
			return
		}

		if err := repo.CreateUser(user); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.ConstraintName == "users_email_key" {
				// 随机生成的邮箱撞上已有用户，跳过即可
				continue
			}
			slog.Error("插入随机用户失败", "error", err)
			return
		}

		slog.Info("已插入随机用户", "email", user.Email, "fullName", user.FullName, "password", password)
		inserted++
	}
	slog.Info("插入随机用户完成", "inserted", inserted)
}

func insertRandomJobApplications(repo *repository.Repository, userEmail string, n int) {
	if userEmail == "" {
		slog.Error("必须通过 -user-email 指定记录所属用户")
		return
	}

	user, err := repo.GetUserByEmail(userEmail)
	if err != nil {
		slog.Error("获取用户失败", "email", userEmail, "error", err)
		return
	}

	for i := 0; i < n; i++ {
		ja := utils.GenerateRandomJobApplication(user.ID)
		if err := repo.CreateJobApplication(ja); err != nil {
			slog.Error("插入随机求职申请失败", "error", err)
			return
		}
		slog.Info("已插入随机求职申请", "jobTitle", ja.JobTitle, "company", ja.Company, "status", ja.Status)
	}
	slog.Info("插入随机求职申请完成", "n", n)
}
