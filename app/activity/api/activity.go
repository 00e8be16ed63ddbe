package main

import (
	"context"
	"flag"

	"mergington-activities/app/activity/api/internal/config"
	"mergington-activities/app/activity/api/internal/handler"
	"mergington-activities/app/activity/api/internal/svc"
	"mergington-activities/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/activity-api.yaml", "配置文件路径")

func main() {
	flag.Parse()

	// 设置全局错误处理器（必须在 server.Start() 之前）
	response.SetupGlobalErrorHandler()

	// 1. 加载配置文件
	var c config.Config
	conf.MustLoad(*configFile, &c)

	// 2. 创建 REST 服务器
	server := rest.MustNewServer(c.RestConf, rest.WithNotFoundHandler(handler.NotFoundHandler()))
	defer server.Stop()

	// 3. 初始化服务上下文
	svcCtx := svc.NewServiceContext(c)
	defer svcCtx.Close()

	// 4. 启动名单推送
	feedCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if svcCtx.Feed != nil {
		go svcCtx.Feed.Run(feedCtx)
	}

	// 5. 注册路由处理器
	handler.RegisterHandlers(server, svcCtx)

	// 6. 启动服务
	logx.Infof("Starting activity-api server at %s:%d, activities=%d, enforceCapacity=%v",
		c.Host, c.Port, len(svcCtx.Directory.Names()), c.Directory.EnforceCapacity)
	server.Start()
}

// 活动报名服务 API 入口
// 说明：
//   activity-api 提供课外活动列表、报名、取消报名以及前端页面
//
// 启动命令：
//   go run activity.go -f etc/activity-api.yaml
